package handlers

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/realtime"
	"github.com/eletroclima/fieldops-service/internal/service"
)

// NotificationsHandler serves the dashboard bell and its live stream.
type NotificationsHandler struct {
	service *service.NotificationService
	hub     *realtime.Hub
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService, hub *realtime.Hub) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService, hub: hub}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	limit, _ := parsePagination(c)
	notifications, err := h.service.List(c.UserContext(), actorID(c), c.QueryBool("unread_only"), limit)
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkRead PUT /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.service.MarkRead(c.UserContext(), c.Params("id"), actorID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead PUT /notifications/read-all.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(c.UserContext(), actorID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// streamKeepAliveInterval paces SSE comment lines so a dead connection is
// noticed even when the subscription is quiet.
const streamKeepAliveInterval = 15 * time.Second

// Stream GET /notifications/stream opens a server-sent-events channel fed by
// the caller's Redis subscription. The subscription is torn down when the
// client disconnects.
func (h *NotificationsHandler) Stream(c *fiber.Ctx) error {
	userID := actorID(c)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	// the request context is torn down when the handler returns; the
	// stream writer outlives it, so the subscription gets its own context
	// and closes when the client goes away.
	sub := h.hub.Subscribe(context.Background(), service.NotificationChannel(userID))

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()
		ticker := time.NewTicker(streamKeepAliveInterval)
		defer ticker.Stop()
		pumpEvents(w, sub.Messages, ticker.C)
	}))
	return nil
}

// pumpEvents forwards subscription payloads as SSE data frames and writes a
// comment frame on every tick. Any write failure, or the messages channel
// closing, ends the stream; without the ticks a quiet subscription would
// never notice the peer is gone.
func pumpEvents(w *bufio.Writer, messages <-chan string, ticks <-chan time.Time) {
	for {
		select {
		case payload, ok := <-messages:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
		case <-ticks:
			if _, err := w.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
		}
		if err := w.Flush(); err != nil {
			return
		}
	}
}
