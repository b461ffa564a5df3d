package preprocess

import (
	"github.com/cosq-in/memochan/internal/logger"
	"github.com/cosq-in/memochan/pkg/executor"
)

type implPreprocessor struct {
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Preprocessor writing normalized audio into tempDir.
func New(tempDir string, exec executor.Executor, log logger.Logger) Preprocessor {
	return &implPreprocessor{
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
