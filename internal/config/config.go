package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Diarization DiarizationConfig `yaml:"diarization"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Watcher     WatcherConfig     `yaml:"watcher"`
	Server      ServerConfig      `yaml:"server"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type WhisperConfig struct {
	ModelSize   string `yaml:"model_size"`
	BinaryPath  string `yaml:"binary_path"`
	Device      string `yaml:"device"`
	ComputeType string `yaml:"compute_type"`
	BeamSize    int    `yaml:"beam_size"`
	Threads     int    `yaml:"threads"`
}

type DiarizationConfig struct {
	Endpoint       string `yaml:"endpoint"`
	HFToken        string `yaml:"hf_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	APIKeys     []string `yaml:"api_keys"`
	Model       string   `yaml:"model"`
	Prompt      string   `yaml:"prompt"`
	Temperature float32  `yaml:"temperature"`
}

type PathsConfig struct {
	WatchDir  string `yaml:"watch_dir"`
	OutputDir string `yaml:"output_dir"`
	TempDir   string `yaml:"temp_dir"`
}

type WatcherConfig struct {
	Prefix        string `yaml:"prefix"`
	Extension     string `yaml:"extension"`
	GracePeriodMs int    `yaml:"grace_period_ms"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Addr                   string `yaml:"addr"`
	DownloadTimeoutSeconds int    `yaml:"download_timeout_seconds"`
}

type PipelineConfig struct {
	CapabilityTimeoutMinutes int `yaml:"capability_timeout_minutes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir is required")
	}

	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "medium"
	}
	if c.Whisper.Device == "" {
		c.Whisper.Device = "auto"
	}
	if c.Whisper.ComputeType == "" {
		c.Whisper.ComputeType = "int8"
	}
	if c.Whisper.BeamSize == 0 {
		c.Whisper.BeamSize = 5
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Diarization.TimeoutSeconds == 0 {
		c.Diarization.TimeoutSeconds = 300
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.TempDir == "" {
		c.Paths.TempDir = os.TempDir()
	}
	if c.Watcher.Prefix == "" {
		c.Watcher.Prefix = "meeting-recording-"
	}
	if c.Watcher.Extension == "" {
		c.Watcher.Extension = ".webm"
	}
	if c.Watcher.GracePeriodMs == 0 {
		c.Watcher.GracePeriodMs = 2000
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.DownloadTimeoutSeconds == 0 {
		c.Server.DownloadTimeoutSeconds = 120
	}
	if c.Pipeline.CapabilityTimeoutMinutes == 0 {
		c.Pipeline.CapabilityTimeoutMinutes = 30
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	// Credentials come from the environment when not set in the file.
	if c.Diarization.HFToken == "" {
		c.Diarization.HFToken = os.Getenv("HF_TOKEN")
	}
	if len(c.Gemini.APIKeys) == 0 {
		if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
			for _, k := range strings.Split(keys, ",") {
				if k = strings.TrimSpace(k); k != "" {
					c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
				}
			}
		}
	}

	return nil
}
