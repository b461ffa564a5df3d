package diarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cosq-in/memochan/internal/domain"
)

type pyannoteResponse struct {
	Turns []struct {
		Start   float64 `json:"start"`
		End     float64 `json:"end"`
		Speaker string  `json:"speaker"`
	} `json:"turns"`
}

// Diarize uploads the audio to the pyannote service and returns its speaker
// turns. Every error path degrades to "no turns" at the call site.
func (d *implDiarizer) Diarize(ctx context.Context, audioPath string) ([]domain.Turn, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open audio: %v", domain.ErrDiarization, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiarization, err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiarization, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiarization, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiarization, err)
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiarization, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: http %d: %s", domain.ErrDiarization, resp.StatusCode, string(b))
	}

	var parsed pyannoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrDiarization, err)
	}

	turns := make([]domain.Turn, 0, len(parsed.Turns))
	for _, t := range parsed.Turns {
		turns = append(turns, domain.Turn{Start: t.Start, End: t.End, Speaker: t.Speaker})
	}

	d.logger.Info(ctx, "Diarization completed: %d turns", len(turns))
	return turns, nil
}
