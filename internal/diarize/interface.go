package diarize

import (
	"context"

	"github.com/cosq-in/memochan/internal/domain"
)

// Diarizer partitions an audio timeline into speaker turns. Turns come back
// in start-time order; gaps (silence, non-speech) are expected.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath string) ([]domain.Turn, error)
}
