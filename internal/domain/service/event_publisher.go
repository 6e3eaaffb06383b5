package service

import (
	"context"
	"time"

	"familytree/internal/domain/entity"
)

// PersonEventType names what happened to a person record.
type PersonEventType string

const (
	PersonCreated    PersonEventType = "person.created"
	PersonUpdated    PersonEventType = "person.updated"
	PersonApproved   PersonEventType = "person.approved"
	PersonUnapproved PersonEventType = "person.unapproved"
	PersonDeleted    PersonEventType = "person.deleted"
	PersonRecovered  PersonEventType = "person.recovered"
	PersonPurged     PersonEventType = "person.purged"
	PersonImported   PersonEventType = "person.imported"
	PersonDeceased   PersonEventType = "person.deceased"
)

// PersonEvent is published after a graph mutation commits.
type PersonEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       PersonEventType `json:"type"`
	PersonIDs  []string        `json:"person_ids"`
	Status     entity.Status   `json:"status,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPersonEvent publishes a person event for downstream consumers
	PublishPersonEvent(ctx context.Context, event *PersonEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
