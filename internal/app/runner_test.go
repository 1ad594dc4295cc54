package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devaoto/go-musixmatch/internal/config"
	"github.com/devaoto/go-musixmatch/pkg/musixmatch"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIKey:      "k",
		BaseURL:     baseURL,
		LogLevel:    "info",
		HTTPTimeout: 2 * time.Second,
	}
}

func TestRunnerRunPrintsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/track.search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q_track"); got != "One More Time" {
			t.Fatalf("unexpected q_track %q", got)
		}
		fmt.Fprint(w, `{"message":{"header":{"status_code":200,"execute_time":0.02},"body":{"track_list":[]}}}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	runner, err := NewRunner(testConfig(srv.URL), nil, &out)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	if err := runner.Run(context.Background(), "track.search", []string{"q_track=One More Time"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"status_code": 200`) {
		t.Fatalf("expected envelope in output, got %s", out.String())
	}
}

func TestRunnerRunSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":{"header":{"status_code":401,"execute_time":0.02},"body":[]}}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	runner, err := NewRunner(testConfig(srv.URL), nil, &out)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	err = runner.Run(context.Background(), "track.lyrics.get", []string{"track_id=1"})
	var apiErr *musixmatch.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *musixmatch.APIError, got %v", err)
	}
	if apiErr.StatusCode != 401 {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %s", out.String())
	}
}

func TestRunnerRunRejectsBadPairs(t *testing.T) {
	var out bytes.Buffer
	runner, err := NewRunner(testConfig(""), nil, &out)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	if err := runner.Run(context.Background(), "track.search", []string{"not-a-pair"}); err == nil {
		t.Fatalf("expected error for malformed pair")
	}
}

func TestRunnerListEndpoints(t *testing.T) {
	var out bytes.Buffer
	runner, err := NewRunner(testConfig(""), nil, &out)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	if err := runner.ListEndpoints(); err != nil {
		t.Fatalf("ListEndpoints: %v", err)
	}
	listing := out.String()
	if !strings.Contains(listing, "track.search") {
		t.Fatalf("expected track.search in listing:\n%s", listing)
	}
	if !strings.Contains(listing, "POST track.lyrics.post") {
		t.Fatalf("expected POST binding in listing:\n%s", listing)
	}
}

func TestNewRunnerValidation(t *testing.T) {
	if _, err := NewRunner(nil, nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewRunner(testConfig(""), nil, nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
