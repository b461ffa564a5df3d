package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/janitor"
)

// download fetches the remote audio into a uniquely named temp file. The
// path is registered with the janitor before any byte is written so partial
// downloads are cleaned up too.
func (s *Server) download(ctx context.Context, audioURL, jobID string, jan *janitor.Janitor) (string, error) {
	dctx, cancel := context.WithTimeout(ctx, s.downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: http %d", domain.ErrDownload, resp.StatusCode)
	}

	inputPath := filepath.Join(s.cfg.Paths.TempDir, fmt.Sprintf("input_%s%s", jobID, extFromURL(audioURL)))
	jan.Register(inputPath)

	f, err := os.Create(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDownload, err)
	}

	return inputPath, nil
}

// extFromURL guesses the input extension from the URL path; recordings
// default to webm when the URL carries none.
func extFromURL(audioURL string) string {
	u, err := url.Parse(audioURL)
	if err != nil {
		return ".webm"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".webm"
}
