package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "webhook-test", nil, slog.Default())
}

func TestSink_PublishDeliversEvent(t *testing.T) {
	t.Parallel()

	var got event
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/events" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding event: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), slog.Default())
	err := sink.Publish(context.Background(), domain.Mutation{
		Kind:   domain.KindTask,
		ID:     9,
		Title:  "buy milk",
		ListID: 2,
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if got.Kind != "tasks" || got.ResourceID != 9 {
		t.Errorf("event = %+v", got)
	}
	if got.DeepLink != "tasks/9" {
		t.Errorf("DeepLink = %q, want tasks/9", got.DeepLink)
	}
	if got.EventID == "" {
		t.Error("EventID is empty, want a UUID")
	}
}

func TestSink_PublishMapsFailureToUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), slog.Default())
	err := sink.Publish(context.Background(), domain.Mutation{Kind: domain.KindTaskList, ID: 1, Title: "x"})

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Publish() error = %v, want ErrUnavailable", err)
	}
}

func TestSink_PublishUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	sink := NewSink(newTestClient(t, "http://127.0.0.1:1"), slog.Default())
	err := sink.Publish(context.Background(), domain.Mutation{Kind: domain.KindTaskList, ID: 1, Title: "x"})

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Publish() error = %v, want ErrUnavailable", err)
	}
}
