package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cosq-in/memochan/internal/domain"
)

// Summarize sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := s.buildPrompt(transcript)

	cfg := &genai.GenerateContentConfig{}
	if s.temperature > 0 {
		cfg.Temperature = genai.Ptr(s.temperature)
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("%w: %v", domain.ErrSummarization, err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return strings.TrimSpace(text), nil
		}

		return "", fmt.Errorf("%w: empty response from Gemini", domain.ErrSummarization)
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %v", domain.ErrSummarization, lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// buildPrompt inserts the transcript at the %s placeholder. The prompt is
// user-configurable, so this is a plain substitution, not a format string: a
// prompt without the placeholder gets the transcript appended, and any other
// % characters pass through untouched.
func (s *implSummarizer) buildPrompt(transcript string) string {
	if strings.Contains(s.prompt, "%s") {
		return strings.Replace(s.prompt, "%s", transcript, 1)
	}
	return s.prompt + "\n\n" + transcript
}
