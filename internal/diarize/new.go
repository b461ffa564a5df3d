package diarize

import (
	"net/http"
	"time"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/logger"
)

type implDiarizer struct {
	endpoint string
	token    string
	client   *http.Client
	logger   logger.Logger
}

// New creates a Diarizer calling the configured pyannote service. Returns
// nil when endpoint or token is missing: diarization is optional and its
// absence degrades attribution, never the job.
func New(cfg config.DiarizationConfig, log logger.Logger) Diarizer {
	if cfg.Endpoint == "" || cfg.HFToken == "" {
		return nil
	}
	return &implDiarizer{
		endpoint: cfg.Endpoint,
		token:    cfg.HFToken,
		client:   &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger:   log,
	}
}
