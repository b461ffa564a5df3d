package pipeline

import (
	"context"

	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/janitor"
)

// Pipeline orchestrates one job: normalization, concurrent transcription and
// diarization, fusion, optional summarization.
type Pipeline interface {
	// Run processes a job whose Source is a local audio path. The caller owns
	// the janitor and must Release it when done; Run registers every temp
	// file it creates with it.
	Run(ctx context.Context, job *domain.Job, jan *janitor.Janitor) (*domain.Result, error)

	// ProcessFile is the watch-mode entry point: it wraps Run with job
	// creation, janitor lifecycle and transcript artifact emission.
	ProcessFile(ctx context.Context, path string) error
}
