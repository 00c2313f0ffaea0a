package types

import (
	"context"
	"time"

	"github.com/reoring/pollyskema"
)

type Voice struct {
	Gender                  Gender   `polly:"gender"`
	ID                      string   `polly:"id"`
	LanguageCode            string   `polly:"language_code"`
	LanguageName            string   `polly:"language_name"`
	Name                    string   `polly:"name"`
	AdditionalLanguageCodes []string `polly:"additional_language_codes"`
	SupportedEngines        []Engine `polly:"supported_engines"`
	// Extra holds keys the schema does not declare.
	Extra map[string]any `polly:",remain"`
}

type Lexicon struct {
	Content string `polly:"content"`
	Name    string `polly:"name"`
}

type LexiconAttributes struct {
	Alphabet     Alphabet  `polly:"alphabet"`
	LanguageCode string    `polly:"language_code"`
	LastModified time.Time `polly:"last_modified"`
	LexiconArn   string    `polly:"lexicon_arn"`
	LexemesCount int       `polly:"lexemes_count"`
	Size         int       `polly:"size"`
}

type LexiconDescription struct {
	Name       string            `polly:"name"`
	Attributes LexiconAttributes `polly:"attributes"`
}

type SynthesisTask struct {
	CreationTime      time.Time        `polly:"creation_time"`
	Engine            Engine           `polly:"engine"`
	LanguageCode      string           `polly:"language_code"`
	LexiconNames      []string         `polly:"lexicon_names"`
	OutputFormat      OutputFormat     `polly:"output_format"`
	OutputURI         string           `polly:"output_uri"`
	RequestCharacters int              `polly:"request_characters"`
	SampleRate        string           `polly:"sample_rate"`
	SnsTopicArn       string           `polly:"sns_topic_arn"`
	SpeechMarkTypes   []SpeechMarkType `polly:"speech_mark_types"`
	TaskID            string           `polly:"task_id"`
	TaskStatus        TaskStatus       `polly:"task_status"`
	TaskStatusReason  string           `polly:"task_status_reason"`
	TextType          TextType         `polly:"text_type"`
	VoiceID           string           `polly:"voice_id"`
}

type SynthesizeSpeechParams struct {
	Engine          Engine           `polly:"engine"`
	LanguageCode    string           `polly:"language_code"`
	LexiconNames    []string         `polly:"lexicon_names"`
	OutputFormat    OutputFormat     `polly:"output_format"`
	SampleRate      string           `polly:"sample_rate"`
	SpeechMarkTypes []SpeechMarkType `polly:"speech_mark_types"`
	Text            string           `polly:"text"`
	TextType        TextType         `polly:"text_type"`
	VoiceID         string           `polly:"voice_id"`
}

type ListVoicesResponse struct {
	Voices    []Voice `polly:"voices"`
	NextToken string  `polly:"next_token"`
}

// ParseVoice constructs a Voice from a decoded API object.
func ParseVoice(ctx context.Context, data map[string]any) (Voice, error) {
	v, _, err := pollyskema.Bind[Voice](ctx, VoiceSchema, data)
	return v, err
}

// ParseSynthesisTask constructs a SynthesisTask from a decoded API object.
func ParseSynthesisTask(ctx context.Context, data map[string]any) (SynthesisTask, error) {
	v, _, err := pollyskema.Bind[SynthesisTask](ctx, SynthesisTaskSchema, data)
	return v, err
}

// ParseLexiconDescription constructs a LexiconDescription from a decoded API
// object.
func ParseLexiconDescription(ctx context.Context, data map[string]any) (LexiconDescription, error) {
	v, _, err := pollyskema.Bind[LexiconDescription](ctx, LexiconDescriptionSchema, data)
	return v, err
}

// DecodeListVoices decodes a DescribeVoices response body.
func DecodeListVoices(ctx context.Context, body []byte) (ListVoicesResponse, error) {
	var out ListVoicesResponse
	m, err := pollyskema.ConstructJSON(ctx, ListVoicesResponseSchema, body)
	if err != nil {
		return out, err
	}
	err = m.Decode(&out)
	return out, err
}

// SynthesizeSpeechBody validates p and renders the request body with wire
// names. Unset optional fields are left out.
func SynthesizeSpeechBody(ctx context.Context, p SynthesizeSpeechParams) (string, error) {
	data := map[string]any{
		"output_format": string(p.OutputFormat),
		"text":          p.Text,
		"voice_id":      p.VoiceID,
	}
	if p.Engine != "" {
		data["engine"] = string(p.Engine)
	}
	if p.LanguageCode != "" {
		data["language_code"] = p.LanguageCode
	}
	if len(p.LexiconNames) > 0 {
		data["lexicon_names"] = p.LexiconNames
	}
	if p.SampleRate != "" {
		data["sample_rate"] = p.SampleRate
	}
	if len(p.SpeechMarkTypes) > 0 {
		data["speech_mark_types"] = p.SpeechMarkTypes
	}
	if p.TextType != "" {
		data["text_type"] = string(p.TextType)
	}
	// requests are validated whatever the client trusts
	m, err := SynthesizeSpeechParamsSchema.Parse(ctx, data)
	if err != nil {
		iss, _ := pollyskema.AsIssues(err)
		return "", &pollyskema.ValidationError{Schema: SynthesizeSpeechParamsSchema.Name(), Issues: iss}
	}
	pm := m.Presence()
	include := append(pm.Names(pollyskema.PresenceSeen), pm.Names(pollyskema.PresenceDefaultApplied)...)
	return m.ToJSON(pollyskema.JSONOpt{DictOpt: pollyskema.DictOpt{Include: include, ByAlias: true}})
}
