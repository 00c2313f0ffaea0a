package types

import (
	"sort"

	"github.com/reoring/pollyskema"
	g "github.com/reoring/pollyskema/dsl"
)

var VoiceSchema = g.Model("Voice").
	Field("gender", g.Enum(genders...)).Alias("Gender").
	Field("id", g.String()).Alias("Id").Required().
	Field("language_code", g.String()).Alias("LanguageCode").
	Field("language_name", g.String()).Alias("LanguageName").
	Field("name", g.String()).Alias("Name").
	Field("additional_language_codes", g.ArrayOf(g.String())).Alias("AdditionalLanguageCodes").
	Field("supported_engines", g.ArrayOf(g.Enum(engines...))).Alias("SupportedEngines").
	MustBuild()

var LexiconSchema = g.Model("Lexicon").
	Field("content", g.String()).Alias("Content").
	Field("name", g.String().Pattern(lexiconNamePattern)).Alias("Name").Required().
	MustBuild()

var LexiconAttributesSchema = g.Model("LexiconAttributes").
	Field("alphabet", g.Enum(alphabets...)).Alias("Alphabet").
	Field("language_code", g.String()).Alias("LanguageCode").
	Field("last_modified", g.Time()).Alias("LastModified").
	Field("lexicon_arn", g.String()).Alias("LexiconArn").
	Field("lexemes_count", g.Int().Min(0)).Alias("LexemesCount").
	Field("size", g.Int().Min(0)).Alias("Size").
	MustBuild()

var LexiconDescriptionSchema = g.Model("LexiconDescription").
	Field("name", g.String()).Alias("Name").
	Field("attributes", g.Object(LexiconAttributesSchema)).Alias("Attributes").
	MustBuild()

var SynthesisTaskSchema = g.Model("SynthesisTask").
	Field("creation_time", g.Time()).Alias("CreationTime").
	Field("engine", g.Enum(engines...)).Alias("Engine").Default(string(EngineStandard)).
	Field("language_code", g.String()).Alias("LanguageCode").
	Field("lexicon_names", g.ArrayOf(g.String()).MaxLen(5)).Alias("LexiconNames").
	Field("output_format", g.Enum(outputFormats...)).Alias("OutputFormat").
	Field("output_uri", g.String()).Alias("OutputUri").
	Field("request_characters", g.Int().Min(0)).Alias("RequestCharacters").
	Field("sample_rate", g.String()).Alias("SampleRate").
	Field("sns_topic_arn", g.String()).Alias("SnsTopicArn").
	Field("speech_mark_types", g.ArrayOf(g.Enum(speechMarkTypes...))).Alias("SpeechMarkTypes").
	Field("task_id", g.String()).Alias("TaskId").Required().
	Field("task_status", g.Enum(taskStatuses...)).Alias("TaskStatus").
	Field("task_status_reason", g.String()).Alias("TaskStatusReason").
	Field("text_type", g.Enum(textTypes...)).Alias("TextType").Default(string(TextTypeText)).
	Field("voice_id", g.String()).Alias("VoiceId").
	MustBuild()

var SynthesizeSpeechParamsSchema = g.Model("SynthesizeSpeechParams").
	Field("engine", g.Enum(engines...)).Alias("Engine").Default(string(EngineStandard)).
	Field("language_code", g.String()).Alias("LanguageCode").
	Field("lexicon_names", g.ArrayOf(g.String()).MaxLen(5)).Alias("LexiconNames").
	Field("output_format", g.Enum(outputFormats...)).Alias("OutputFormat").Required().
	Field("sample_rate", g.Enum("8000", "16000", "22050", "24000")).Alias("SampleRate").
	Field("speech_mark_types", g.ArrayOf(g.Enum(speechMarkTypes...))).Alias("SpeechMarkTypes").
	Field("text", g.String().MinLen(1)).Alias("Text").Required().
	Field("text_type", g.Enum(textTypes...)).Alias("TextType").Default(string(TextTypeText)).
	Field("voice_id", g.String()).Alias("VoiceId").Required().
	MustBuild()

var ListVoicesResponseSchema = g.Model("ListVoicesResponse").
	Field("voices", g.ArrayOf(g.Object(VoiceSchema))).Alias("Voices").Default([]any{}).
	Field("next_token", g.String()).Alias("NextToken").
	MustBuild()

const lexiconNamePattern = `^[0-9A-Za-z]{1,20}$`

var registry = map[string]*pollyskema.Schema{}

func init() {
	for _, s := range []*pollyskema.Schema{
		VoiceSchema,
		LexiconSchema,
		LexiconAttributesSchema,
		LexiconDescriptionSchema,
		SynthesisTaskSchema,
		SynthesizeSpeechParamsSchema,
		ListVoicesResponseSchema,
	} {
		registry[s.Name()] = s
	}
}

// Lookup returns the schema registered under name, e.g. "Voice".
func Lookup(name string) (*pollyskema.Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered schema names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
