package types

// Engine selects the synthesis engine.
type Engine string

const (
	EngineStandard Engine = "standard"
	EngineNeural   Engine = "neural"
)

// OutputFormat is the audio (or speech mark) format of a synthesis.
type OutputFormat string

const (
	OutputFormatMP3       OutputFormat = "mp3"
	OutputFormatOggVorbis OutputFormat = "ogg_vorbis"
	OutputFormatPCM       OutputFormat = "pcm"
	OutputFormatJSON      OutputFormat = "json"
)

// TextType tells whether input text is plain text or SSML.
type TextType string

const (
	TextTypeText TextType = "text"
	TextTypeSSML TextType = "ssml"
)

type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

type TaskStatus string

const (
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

type SpeechMarkType string

const (
	SpeechMarkSentence SpeechMarkType = "sentence"
	SpeechMarkSSML     SpeechMarkType = "ssml"
	SpeechMarkViseme   SpeechMarkType = "viseme"
	SpeechMarkWord     SpeechMarkType = "word"
)

// Alphabet of a pronunciation lexicon.
type Alphabet string

const (
	AlphabetIPA    Alphabet = "ipa"
	AlphabetXSAMPA Alphabet = "x-sampa"
)

var (
	engines         = []string{string(EngineStandard), string(EngineNeural)}
	outputFormats   = []string{string(OutputFormatMP3), string(OutputFormatOggVorbis), string(OutputFormatPCM), string(OutputFormatJSON)}
	textTypes       = []string{string(TextTypeText), string(TextTypeSSML)}
	genders         = []string{string(GenderFemale), string(GenderMale)}
	taskStatuses    = []string{string(TaskStatusScheduled), string(TaskStatusInProgress), string(TaskStatusCompleted), string(TaskStatusFailed)}
	speechMarkTypes = []string{string(SpeechMarkSentence), string(SpeechMarkSSML), string(SpeechMarkViseme), string(SpeechMarkWord)}
	alphabets       = []string{string(AlphabetIPA), string(AlphabetXSAMPA)}
)
