package events

import (
	"context"
)

// Publisher emits user events. Callers use it best-effort: log and ignore errors.
type Publisher interface {
	// PublishUserEvent sends one user snapshot to the given topic.
	// Returns an error only on write failure; callers typically log and ignore.
	PublishUserEvent(ctx context.Context, topic string, event *UserEvent) error
	// Close releases resources (e.g. the Kafka writer). Safe to call if already closed.
	Close() error
}
