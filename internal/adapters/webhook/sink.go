// Package webhook is the outbound adapter that forwards change events to an
// external endpoint. Delivery is best-effort: the change notifier logs and
// drops failures, so a broken webhook never blocks or rolls back the
// mutation that produced the event.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time interface check.
var _ ports.WebhookSink = (*Sink)(nil)

// event is the JSON payload delivered to the webhook endpoint. EventID is a
// fresh UUID per delivery attempt so the receiver can deduplicate retries.
type event struct {
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	ResourceID int64     `json:"resource_id"`
	Title      string    `json:"title"`
	DeepLink   string    `json:"deep_link"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink delivers change events over HTTP. The underlying [httpclient.Client]
// provides circuit breaking, retry with exponential backoff, rate limiting,
// and OpenTelemetry tracing; it also exposes the endpoint's health through
// its circuit breaker state ([ports.HealthChecker]).
type Sink struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewSink creates a Sink that posts events through the given client. The
// client's BaseURL should point at the receiving endpoint's root.
func NewSink(client *httpclient.Client, logger *slog.Logger) *Sink {
	return &Sink{client: client, logger: logger}
}

// Publish sends one change event as POST /events. Any 2xx response counts
// as delivered; everything else maps to domain.ErrUnavailable.
func (s *Sink) Publish(ctx context.Context, m domain.Mutation) error {
	e := event{
		EventID:    uuid.NewString(),
		Kind:       string(m.Kind),
		ResourceID: m.ID,
		Title:      m.NotificationTitle(),
		DeepLink:   domain.Ref{Kind: m.Kind, ID: m.ID}.String(),
		OccurredAt: time.Now().UTC(),
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling webhook event: %w", err)
	}

	url := s.client.BaseURL() + "/events"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			s.closeBody(ctx, resp)
		}
		return fmt.Errorf("delivering webhook event %s: %w", e.EventID, domain.ErrUnavailable)
	}
	defer s.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook endpoint returned %d for event %s: %w", resp.StatusCode, e.EventID, domain.ErrUnavailable)
	}

	s.logger.DebugContext(ctx, "webhook event delivered",
		slog.String("event_id", e.EventID),
		slog.String("deep_link", e.DeepLink),
	)
	return nil
}

func (s *Sink) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close webhook response body",
			slog.String("error", err.Error()),
		)
	}
}
