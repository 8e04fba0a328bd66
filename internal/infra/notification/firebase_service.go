// Package notification provides the Firebase Cloud Messaging implementation
// of the push notification service.
package notification

import (
	"context"

	"moa/internal/domain/service"
	"moa/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM caps a multicast request at 500 tokens. Large groups fan out in
// chunks so a single popular group never fails the whole send.
const multicastChunkSize = 500

type fcmService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *fcmService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification fans a push notification out to every device token,
// chunked to respect the FCM multicast limit. Tokens FCM reports as invalid
// or unregistered are returned so callers can prune stale registrations.
func (s *fcmService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for len(tokens) > 0 {
		chunk := tokens
		if len(chunk) > multicastChunkSize {
			chunk = chunk[:multicastChunkSize]
		}
		tokens = tokens[len(chunk):]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount
		for idx, resp := range response.Responses {
			if resp.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
