package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"moa/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscriptionName = "projects/local/subscriptions/group-state-sub"

// localHTTPPublisher posts events straight to the worker endpoint in the
// shape Google Pub/Sub uses for push delivery, so the worker handles
// development traffic and production traffic identically.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// pushedMessage mirrors the message portion of a Pub/Sub push request.
type pushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// PubSubPushMessage represents the envelope of a Pub/Sub push request.
type PubSubPushMessage struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishGroupStateEvent delivers the event to the worker with one HTTP POST.
func (p *localHTTPPublisher) PublishGroupStateEvent(ctx context.Context, event *service.GroupStateEvent) error {
	body, err := buildPushEnvelope(event)
	if err != nil {
		return err
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("group_id", event.GroupID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("group_id", event.GroupID),
	)

	return nil
}

// Close releases any resources held by the publisher.
func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

func buildPushEnvelope(event *service.GroupStateEvent) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"group_id": event.GroupID,
		"state":    event.State.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	body, err := json.Marshal(PubSubPushMessage{
		Subscription: localSubscriptionName,
		Message: pushedMessage{
			Data:        base64.StdEncoding.EncodeToString(eventData),
			Attributes:  attributes,
			MessageID:   event.GroupID + ":" + event.State.String(),
			PublishTime: time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}
