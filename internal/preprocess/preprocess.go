package preprocess

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cosq-in/memochan/internal/domain"
)

// Normalize converts the source audio to 16kHz mono WAV, the format both
// inference capabilities accept. Re-running it on already-canonical audio
// produces equivalent output, so callers may normalize unconditionally.
func (p *implPreprocessor) Normalize(ctx context.Context, sourcePath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	outPath := filepath.Join(p.tempDir, base+"_16k.wav")

	p.logger.Info(ctx, "Normalizing audio: %s", sourcePath)

	// -ar 16000: sample rate the models expect
	// -ac 1: mono
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", sourcePath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPreprocess, err)
	}

	p.logger.Info(ctx, "Audio normalized: %s", outPath)
	return outPath, nil
}
