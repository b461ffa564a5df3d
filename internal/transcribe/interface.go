package transcribe

import (
	"context"

	"github.com/cosq-in/memochan/internal/domain"
)

// Transcriber converts audio into timestamped text segments with detected
// language info. Implementations must return segments ordered by start time.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (domain.Transcript, error)
}
