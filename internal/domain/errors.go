package domain

import "errors"

// Error taxonomy for pipeline stages. Call sites classify with errors.Is:
// transcription, download and emit errors are fatal to the job, the rest
// degrade output and let the job continue.
var (
	ErrPreprocess    = errors.New("preprocess failed")
	ErrTranscription = errors.New("transcription failed")
	ErrDiarization   = errors.New("diarization failed")
	ErrSummarization = errors.New("summarization failed")
	ErrDownload      = errors.New("download failed")
	ErrEmit          = errors.New("emit failed")
)
