package domain

// Mode identifies which front-end submitted a job.
type Mode string

const (
	ModeWatch   Mode = "watch"
	ModeRequest Mode = "request"
)

// State is a job's position in the processing lifecycle.
type State string

const (
	StateReceived      State = "RECEIVED"
	StateDownloading   State = "DOWNLOADING"
	StatePreprocessing State = "PREPROCESSING"
	StateTranscribing  State = "TRANSCRIBING"
	StateFusing        State = "FUSING"
	StateSummarizing   State = "SUMMARIZING"
	StateEmitting      State = "EMITTING"
	StateDone          State = "DONE"
	StateFailed        State = "FAILED"
)

// UnknownSpeaker is the sentinel label for segments no diarization turn covers.
const UnknownSpeaker = "Unknown"

// Job is a single processing request, owned by the pipeline for its duration.
type Job struct {
	ID     string
	Source string
	Mode   Mode
	State  State
}

// Word carries word-level timing within a segment.
type Word struct {
	Word  string
	Start float64
	End   float64
}

// Segment is a contiguous span of recognized speech.
type Segment struct {
	Start float64
	End   float64
	Text  string
	Words []Word
}

// Transcript bundles the transcription output with detected-language info.
type Transcript struct {
	Segments            []Segment
	Language            string
	LanguageProbability float64
	Duration            float64
}

// Turn is a single speaker-attributed interval from diarization.
type Turn struct {
	Start   float64
	End     float64
	Speaker string
}

// Line is a speaker-attributed transcript segment. Immutable once created.
type Line struct {
	Start   float64
	End     float64
	Speaker string
	Text    string
}

// Result is the terminal artifact of a job.
type Result struct {
	JobID               string
	Lines               []Line
	Language            string
	LanguageProbability float64
	Summary             string
	Diarized            bool
}
