package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cosq-in/memochan/internal/domain"
)

// ArtifactWriter persists watch-mode results as plain-text transcripts.
type ArtifactWriter struct {
	OutputDir string
	ModelID   string
	Device    string
}

// Write renders the result into <OutputDir>/<source base name>.txt,
// overwriting any previous artifact of the same name.
func (w ArtifactWriter) Write(result *domain.Result, sourceName string) (string, error) {
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("%w: create output dir: %v", domain.ErrEmit, err)
	}

	outPath := filepath.Join(w.OutputDir, filepath.Base(sourceName)+".txt")

	var b strings.Builder
	b.WriteString("--- MemoChan Advanced Transcript ---\n")
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Model: %s on %s\n", w.ModelID, strings.ToUpper(w.Device))
	fmt.Fprintf(&b, "Diarization: %s\n", enabledLabel(result.Diarized))
	b.WriteString(strings.Repeat("-", 40) + "\n\n")

	for _, line := range result.Lines {
		fmt.Fprintf(&b, "%s\n", RenderLine(line))
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("%w: write artifact: %v", domain.ErrEmit, err)
	}

	return outPath, nil
}

// RenderLine formats one attributed line the way the transcript file and the
// summarization input both expect it.
func RenderLine(line domain.Line) string {
	return fmt.Sprintf("[%.2fs -> %.2fs] [%s]: %s", line.Start, line.End, line.Speaker, line.Text)
}

// RenderTranscript flattens attributed lines into the "speaker: text" form
// the summarization capability consumes.
func RenderTranscript(lines []domain.Line) string {
	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "%s: %s\n", line.Speaker, line.Text)
	}
	return b.String()
}

func enabledLabel(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}
