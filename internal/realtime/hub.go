package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Hub bridges Redis pub/sub channels to in-process subscribers. Each open
// dashboard stream gets its own subscription, torn down on disconnect, so a
// dropped client never accumulates state.
type Hub struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewHub constructs the hub.
func NewHub(rdb *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{rdb: rdb, logger: logger}
}

// Subscription is one live channel subscription.
type Subscription struct {
	pubsub *redis.PubSub
	// Messages delivers raw payloads published to the channel. It closes
	// when the subscription is torn down.
	Messages <-chan string
	cancel   context.CancelFunc
}

// Subscribe opens a subscription on the given channel. The caller must call
// Close when the consumer goes away.
func (h *Hub) Subscribe(ctx context.Context, channel string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	pubsub := h.rdb.Subscribe(ctx, channel)

	out := make(chan string, 16)
	go func() {
		defer close(out)
		for {
			msg, err := pubsub.ReceiveMessage(ctx)
			if err != nil {
				if ctx.Err() == nil {
					h.logger.Debug("pubsub receive ended", zap.String("channel", channel), zap.Error(err))
				}
				return
			}
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &Subscription{pubsub: pubsub, Messages: out, cancel: cancel}
}

// Close tears the subscription down.
func (s *Subscription) Close() {
	s.cancel()
	_ = s.pubsub.Close()
}
