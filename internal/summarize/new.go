package summarize

import (
	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/logger"
)

const defaultPrompt = `You are a meeting-notes assistant. Based on the speaker-attributed transcript below, write a concise summary:
- one-line topic statement
- key discussion points in order of appearance
- decisions made and action items, with the speaker responsible where clear

Transcript:
---
%s
---`

type implSummarizer struct {
	apiKeys     []string
	currentKey  int
	model       string
	prompt      string
	temperature float32
	logger      logger.Logger
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
// Returns nil when no key is configured; the pipeline substitutes a
// placeholder summary in that case.
func New(cfg config.GeminiConfig, log logger.Logger) Summarizer {
	if len(cfg.APIKeys) == 0 {
		return nil
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &implSummarizer{
		apiKeys:     cfg.APIKeys,
		model:       cfg.Model,
		prompt:      prompt,
		temperature: cfg.Temperature,
		logger:      log,
	}
}
