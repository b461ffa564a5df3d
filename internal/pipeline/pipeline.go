package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/fuse"
	"github.com/cosq-in/memochan/internal/janitor"
	"github.com/cosq-in/memochan/internal/sink"
)

// placeholderSummary stands in when the summarization stage runs but fails.
const placeholderSummary = "(summary unavailable)"

// Run drives a job from preprocessing through fusion and optional
// summarization. Transcription failure is fatal; diarization and
// summarization failures degrade the result and the job completes.
func (p *implPipeline) Run(ctx context.Context, job *domain.Job, jan *janitor.Janitor) (*domain.Result, error) {
	job.State = domain.StatePreprocessing
	audioPath := job.Source
	if normPath, err := p.pre.Normalize(ctx, job.Source); err != nil {
		// Some inputs are already compatible with the models, so a failed
		// transcode degrades to feeding the original file downstream.
		p.logger.Warn(ctx, "Preprocess failed, feeding original input: %v", err)
	} else {
		jan.Register(normPath)
		audioPath = normPath
	}

	job.State = domain.StateTranscribing
	var transcript domain.Transcript
	var turns []domain.Turn

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := p.transcribePermit.Acquire(gctx, 1); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTranscription, err)
		}
		defer p.transcribePermit.Release(1)

		cctx, cancel := context.WithTimeout(gctx, p.capabilityTimeout)
		defer cancel()
		tr, err := p.transcriber.Transcribe(cctx, audioPath)
		if err != nil {
			return err
		}
		transcript = tr
		return nil
	})
	g.Go(func() error {
		if p.diarizer == nil {
			return nil
		}
		if err := p.diarizePermit.Acquire(gctx, 1); err != nil {
			return nil
		}
		defer p.diarizePermit.Release(1)

		cctx, cancel := context.WithTimeout(gctx, p.capabilityTimeout)
		defer cancel()
		ts, err := p.diarizer.Diarize(cctx, audioPath)
		if err != nil {
			p.logger.Warn(ctx, "Diarization failed, continuing without speakers: %v", err)
			return nil
		}
		turns = ts
		return nil
	})
	if err := g.Wait(); err != nil {
		job.State = domain.StateFailed
		return nil, err
	}

	job.State = domain.StateFusing
	lines := fuse.Attribute(transcript.Segments, turns)

	result := &domain.Result{
		JobID:               job.ID,
		Lines:               lines,
		Language:            transcript.Language,
		LanguageProbability: transcript.LanguageProbability,
		Diarized:            len(turns) > 0,
	}

	if p.summarizer != nil {
		job.State = domain.StateSummarizing
		result.Summary = p.summarize(ctx, lines)
	}

	return result, nil
}

func (p *implPipeline) summarize(ctx context.Context, lines []domain.Line) string {
	if err := p.summarizePermit.Acquire(ctx, 1); err != nil {
		return placeholderSummary
	}
	defer p.summarizePermit.Release(1)

	cctx, cancel := context.WithTimeout(ctx, p.capabilityTimeout)
	defer cancel()
	summary, err := p.summarizer.Summarize(cctx, sink.RenderTranscript(lines))
	if err != nil {
		p.logger.Warn(ctx, "Summarization failed, using placeholder: %v", err)
		return placeholderSummary
	}
	return summary
}
