package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eletroclima/fieldops-service/internal/events"
)

// publish stamps identity and time onto an event before dispatch. A nil
// dispatcher disables eventing, used by tests.
func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = dispatcher.Publish(ctx, event)
}
