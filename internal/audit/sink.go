package audit

import (
	"context"
	"time"
)

// Event is a single moderation-relevant action.
type Event struct {
	Action       string
	Details      string
	ResourceID   string
	ResourceType string
	ActorID      string
	Timestamp    time.Time
}

// Sink receives audit events. The lifecycle services depend on this
// contract only; delivery is a collaborator concern.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

// NoopSink discards every event. It stands in until a real audit backend
// is wired.
type NoopSink struct{}

func (NoopSink) Record(ctx context.Context, event Event) error {
	return nil
}
