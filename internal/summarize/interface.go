package summarize

import "context"

// Summarizer produces a natural-language summary of an attributed transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
