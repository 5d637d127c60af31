package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
)

// NotificationChannel returns the per-user pub/sub channel name.
func NotificationChannel(userID string) string {
	return "notifications:" + userID
}

// NotificationService persists per-user notifications and pushes them over
// Redis so open dashboard streams see them immediately.
type NotificationService struct {
	notifications repository.NotificationRepository
	rdb           *redis.Client
	logger        *zap.Logger
}

// NotificationMessage is the wire form pushed over the per-user channel.
type NotificationMessage struct {
	ID        string                  `json:"id"`
	Kind      domain.NotificationKind `json:"kind"`
	Title     string                  `json:"title"`
	Body      string                  `json:"body"`
	CreatedAt time.Time               `json:"created_at"`
}

// NewNotificationService constructs the service.
func NewNotificationService(notifications repository.NotificationRepository, rdb *redis.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, rdb: rdb, logger: logger}
}

// Notify stores a notification and publishes it to the user's channel.
// Publish failures are logged, never surfaced: the bell still shows the row
// on the next poll.
func (s *NotificationService) Notify(ctx context.Context, userID string, kind domain.NotificationKind, title, body string) error {
	notification := &domain.Notification{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return err
	}

	if s.rdb != nil {
		payload, err := json.Marshal(NotificationMessage{
			ID:        notification.ID,
			Kind:      kind,
			Title:     title,
			Body:      body,
			CreatedAt: notification.CreatedAt,
		})
		if err == nil {
			if err := s.rdb.Publish(ctx, NotificationChannel(userID), payload).Err(); err != nil {
				s.logger.Warn("notification publish failed", zap.String("user_id", userID), zap.Error(err))
			}
		}
	}
	return nil
}

// List returns the user's notifications, optionally unread only.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, unreadOnly, limit)
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

// MarkAllRead marks everything read for the user.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
