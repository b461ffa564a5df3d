package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cosq-in/memochan/internal/domain"
)

// helperOutput mirrors the JSON the faster-whisper helper prints to stdout.
type helperOutput struct {
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
	Duration            float64 `json:"duration"`
	Segments            []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
		Words []struct {
			Word  string  `json:"word"`
			Start float64 `json:"start"`
			End   float64 `json:"end"`
		} `json:"words"`
	} `json:"segments"`
}

// Transcribe runs the faster-whisper helper and parses its JSON output.
// A non-zero exit or unparseable output is fatal to the job.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (domain.Transcript, error) {
	t.logger.Info(ctx, "Transcribing (model=%s, beam=%d): %s", t.cfg.ModelSize, t.cfg.BeamSize, audioPath)

	args := []string{
		"--audio", audioPath,
		"--model", t.cfg.ModelSize,
		"--device", t.cfg.Device,
		"--compute-type", t.cfg.ComputeType,
		"--beam-size", strconv.Itoa(t.cfg.BeamSize),
		"--threads", strconv.Itoa(t.cfg.Threads),
		"--word-timestamps",
	}

	out, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...)
	if err != nil {
		return domain.Transcript{}, fmt.Errorf("%w: %v", domain.ErrTranscription, err)
	}

	var parsed helperOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return domain.Transcript{}, fmt.Errorf("%w: parse helper output: %v", domain.ErrTranscription, err)
	}

	tr := domain.Transcript{
		Language:            parsed.Language,
		LanguageProbability: parsed.LanguageProbability,
		Duration:            parsed.Duration,
	}
	for _, s := range parsed.Segments {
		seg := domain.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		}
		for _, w := range s.Words {
			seg.Words = append(seg.Words, domain.Word{Word: w.Word, Start: w.Start, End: w.End})
		}
		tr.Segments = append(tr.Segments, seg)
	}

	t.logger.Info(ctx, "Transcription completed: %d segments, language=%s", len(tr.Segments), tr.Language)
	return tr, nil
}
