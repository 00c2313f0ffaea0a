package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "allowed").
type Translator interface {
	Message(code string, data map[string]string) string
}

var catalog = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "field required",
		"too_small":      "value is too small",
		"too_big":        "value is too big",
		"too_short":      "too short",
		"too_long":       "too long",
		"pattern":        "does not match pattern",
		"invalid_enum":   "value is not a permitted choice",
		"invalid_format": "invalid format",
		"parse_error":    "parse error",
		"business_rule":  "rule violated",
	},
	"ja": {
		"invalid_type":   "型が不正です",
		"required":       "必須プロパティが不足しています",
		"too_small":      "値が小さすぎます",
		"too_big":        "値が大きすぎます",
		"too_short":      "短すぎます",
		"too_long":       "長すぎます",
		"pattern":        "パターンに一致しません",
		"invalid_enum":   "許可されていない値です",
		"invalid_format": "形式が不正です",
		"parse_error":    "解析エラー",
		"business_rule":  "ルール違反です",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalog[t.lang][code]
	if !ok {
		msg, ok = catalog["en"][code]
	}
	if !ok {
		return code
	}
	if exp := data["expected"]; exp != "" {
		return msg + " (expected " + exp + ")"
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalog[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation; nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
