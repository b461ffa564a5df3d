package preprocess

import "context"

// Preprocessor converts arbitrary input audio into the canonical waveform
// the inference capabilities accept.
type Preprocessor interface {
	Normalize(ctx context.Context, sourcePath string) (string, error)
}
