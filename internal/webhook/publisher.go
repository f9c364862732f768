package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/netserve/catalog/internal/config"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
)

// Lifecycle event names delivered to the configured webhook endpoint.
const (
	EventSubscriptionCreated   = "subscription.created"
	EventSubscriptionApproved  = "subscription.approved"
	EventSubscriptionRejected  = "subscription.rejected"
	EventSubscriptionCancelled = "subscription.cancelled"
	EventSubscriptionExpired   = "subscription.expired"
	EventSubscriptionRenewed   = "subscription.renewed"
)

// Event is the payload envelope posted to the webhook endpoint.
type Event struct {
	ID        string      `json:"id"`
	EventName string      `json:"event_name"`
	Timestamp time.Time   `json:"timestamp"`
	UserID    string      `json:"user_id,omitempty"`
	Payload   interface{} `json:"payload"`
}

// Publisher delivers lifecycle events to an external endpoint. Delivery is
// best effort; callers must not fail the triggering operation on error.
type Publisher interface {
	Publish(ctx context.Context, eventName string, payload interface{}) error
}

type httpPublisher struct {
	client   *retryablehttp.Client
	endpoint string
	logger   *logger.Logger
}

// NewPublisher builds the configured publisher. When webhooks are disabled it
// returns a no-op publisher so callers never branch on configuration.
func NewPublisher(cfg *config.Configuration, log *logger.Logger) Publisher {
	if !cfg.Webhook.Enabled || cfg.Webhook.Endpoint == "" {
		return &noopPublisher{}
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Webhook.MaxRetry
	client.HTTPClient.Timeout = cfg.Webhook.Timeout
	client.Logger = log.GetRetryableHTTPLogger()

	return &httpPublisher{
		client:   client,
		endpoint: cfg.Webhook.Endpoint,
		logger:   log,
	}
}

func (p *httpPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	event := Event{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_WEBHOOK),
		EventName: eventName,
		Timestamp: time.Now().UTC(),
		UserID:    types.GetUserID(ctx),
		Payload:   payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode webhook event").
			Mark(ierr.ErrInternal)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", p.endpoint, bytes.NewReader(body))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to build webhook request").
			Mark(ierr.ErrHTTPClient)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Webhook delivery failed").
			WithReportableDetails(map[string]any{
				"event_name": eventName,
				"event_id":   event.ID,
			}).
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return ierr.NewErrorf("webhook endpoint returned %d", resp.StatusCode).
			WithHint("Webhook endpoint rejected the event").
			WithReportableDetails(map[string]any{
				"event_name":  eventName,
				"status_code": resp.StatusCode,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	p.logger.Debugw("delivered webhook event",
		"event_name", eventName,
		"event_id", event.ID,
	)
	return nil
}

type noopPublisher struct{}

func (*noopPublisher) Publish(_ context.Context, _ string, _ interface{}) error {
	return nil
}
