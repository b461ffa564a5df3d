package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/janitor"
	"github.com/cosq-in/memochan/internal/sink"
)

// ProcessFile handles one recording discovered by the directory watcher:
// runs the pipeline and writes the transcript artifact next to the other
// outputs. The original recording is left in place; only files the job
// itself created are cleaned up.
func (p *implPipeline) ProcessFile(ctx context.Context, path string) error {
	startTime := time.Now()

	job := &domain.Job{
		ID:     uuid.New().String(),
		Source: path,
		Mode:   domain.ModeWatch,
		State:  domain.StateReceived,
	}

	jan := janitor.New(p.logger)
	defer jan.Release(ctx)

	p.logger.Info(ctx, "New recording: %s (job %s)", filepath.Base(path), job.ID)

	result, err := p.Run(ctx, job, jan)
	if err != nil {
		return fmt.Errorf("process %s: %w", filepath.Base(path), err)
	}

	job.State = domain.StateEmitting
	writer := sink.ArtifactWriter{
		OutputDir: p.cfg.Paths.OutputDir,
		ModelID:   p.cfg.Whisper.ModelSize,
		Device:    p.cfg.Whisper.Device,
	}
	outPath, err := writer.Write(result, filepath.Base(path))
	if err != nil {
		job.State = domain.StateFailed
		return fmt.Errorf("emit transcript for %s: %w", filepath.Base(path), err)
	}

	job.State = domain.StateDone
	p.logger.Info(ctx, "Completed in %.1fs. Saved to: %s", time.Since(startTime).Seconds(), outPath)
	return nil
}
