package service

import (
	"context"

	"moa/internal/domain/entity"
)

// GroupStateEvent represents a group lifecycle transition to be fanned out
// to participants by the notification worker.
type GroupStateEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	GroupID      string            `json:"group_id"`
	GroupName    string            `json:"group_name"`
	State        entity.GroupState `json:"state"`
	Content      string            `json:"content"`
	Image        string            `json:"image,omitempty"`
	RecipientIDs []string          `json:"recipient_ids"` // Participant user IDs
}

// EventPublisher defines the interface for publishing lifecycle events to a
// message queue. Publishing is best-effort: a failed publish is logged by the
// caller and never rolls back the state mutation that triggered it.
type EventPublisher interface {
	// PublishGroupStateEvent publishes a lifecycle event for async fan-out.
	PublishGroupStateEvent(ctx context.Context, event *GroupStateEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
