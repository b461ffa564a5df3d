package diarize

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cosq-in/memochan/internal/config"
	"github.com/cosq-in/memochan/internal/domain"
	"github.com/cosq-in/memochan/internal/logger"
)

func testAudioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting-recording-1_16k.wav")
	if err := os.WriteFile(path, []byte("wav bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testDiarizer(t *testing.T, endpoint string) Diarizer {
	t.Helper()
	d := New(config.DiarizationConfig{
		Endpoint:       endpoint,
		HFToken:        "hf_test_token",
		TimeoutSeconds: 5,
	}, logger.New("error"))
	if d == nil {
		t.Fatal("New() returned nil with full config")
	}
	return d
}

func TestNewReturnsNilWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DiarizationConfig
	}{
		{"no endpoint", config.DiarizationConfig{HFToken: "hf_x"}},
		{"no token", config.DiarizationConfig{Endpoint: "http://localhost:9000"}},
		{"empty", config.DiarizationConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := New(tt.cfg, logger.New("error")); d != nil {
				t.Errorf("New() = %v, want nil", d)
			}
		})
	}
}

func TestDiarizeUploadsAndParsesTurns(t *testing.T) {
	audio := testAudioFile(t)

	var gotAuth, gotFilename, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		b, _ := io.ReadAll(file)
		gotBody = string(b)

		io.WriteString(w, `{"turns": [
			{"start": 0, "end": 2.5, "speaker": "SPEAKER_00"},
			{"start": 2.5, "end": 4, "speaker": "SPEAKER_01"}
		]}`)
	}))
	defer srv.Close()

	turns, err := testDiarizer(t, srv.URL).Diarize(context.Background(), audio)
	if err != nil {
		t.Fatalf("Diarize() error = %v", err)
	}

	if gotAuth != "Bearer hf_test_token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotFilename != filepath.Base(audio) {
		t.Errorf("uploaded filename = %q, want %q", gotFilename, filepath.Base(audio))
	}
	if gotBody != "wav bytes" {
		t.Errorf("uploaded body = %q", gotBody)
	}

	want := []domain.Turn{
		{Start: 0, End: 2.5, Speaker: "SPEAKER_00"},
		{Start: 2.5, End: 4, Speaker: "SPEAKER_01"},
	}
	if len(turns) != len(want) {
		t.Fatalf("got %d turns, want %d", len(turns), len(want))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turn %d = %+v, want %+v", i, turns[i], want[i])
		}
	}
}

func TestDiarizeServiceErrorIsDiarizationError(t *testing.T) {
	audio := testAudioFile(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testDiarizer(t, srv.URL).Diarize(context.Background(), audio)
	if !errors.Is(err, domain.ErrDiarization) {
		t.Errorf("error = %v, want ErrDiarization", err)
	}
}

func TestDiarizeBadResponseIsDiarizationError(t *testing.T) {
	audio := testAudioFile(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer srv.Close()

	_, err := testDiarizer(t, srv.URL).Diarize(context.Background(), audio)
	if !errors.Is(err, domain.ErrDiarization) {
		t.Errorf("error = %v, want ErrDiarization", err)
	}
}

func TestDiarizeMissingAudioIsDiarizationError(t *testing.T) {
	_, err := testDiarizer(t, "http://localhost:1").Diarize(context.Background(), "does-not-exist.wav")
	if !errors.Is(err, domain.ErrDiarization) {
		t.Errorf("error = %v, want ErrDiarization", err)
	}
}
