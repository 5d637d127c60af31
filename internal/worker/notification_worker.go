package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/internal/service"
)

// NotificationWorker turns domain events into per-user notifications. It runs
// inside the API process, subscribed to the in-memory dispatcher.
type NotificationWorker struct {
	notifications *service.NotificationService
	orders        repository.OrderRepository
	contracts     repository.MaintenanceRepository
	logger        *zap.Logger
}

// NewNotificationWorker constructs the worker.
func NewNotificationWorker(notifications *service.NotificationService, orders repository.OrderRepository, contracts repository.MaintenanceRepository, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, orders: orders, contracts: contracts, logger: logger}
}

// Register subscribes the worker's handlers.
func (w *NotificationWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventOrderStatusChanged, w.handleOrderStatusChanged)
	dispatcher.Subscribe(events.EventOvertimeReviewed, w.handleOvertimeReviewed)
	dispatcher.Subscribe(events.EventMaintenanceDue, w.handleMaintenanceDue)
	dispatcher.Subscribe(events.EventAppointmentDecided, w.handleAppointmentDecided)
}

func (w *NotificationWorker) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderStatusChangedPayload)
	if !ok {
		return nil
	}
	order, err := w.orders.GetByID(ctx, payload.OrderID)
	if err != nil {
		w.logger.Warn("order lookup failed for notification", zap.String("order_id", payload.OrderID), zap.Error(err))
		return nil
	}
	if order.TechnicianID == nil || *order.TechnicianID == event.ActorID {
		return nil
	}
	return w.notifications.Notify(ctx, *order.TechnicianID,
		domain.NotificationOrderStatusChanged,
		fmt.Sprintf("Order %s is now %s", order.Number, payload.NewStatus),
		order.Title)
}

func (w *NotificationWorker) handleOvertimeReviewed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OvertimeReviewedPayload)
	if !ok {
		return nil
	}
	title := "Overtime approved"
	if payload.Status == domain.OvertimeStatusRejected {
		title = "Overtime rejected"
	}
	return w.notifications.Notify(ctx, payload.TechnicianID,
		domain.NotificationOvertimeReviewed, title, "")
}

func (w *NotificationWorker) handleMaintenanceDue(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MaintenanceDuePayload)
	if !ok {
		return nil
	}
	contract, err := w.contracts.GetByID(ctx, payload.ContractID)
	if err != nil {
		w.logger.Warn("contract lookup failed for notification", zap.String("contract_id", payload.ContractID), zap.Error(err))
		return nil
	}
	if contract.TechnicianID == nil {
		return nil
	}
	return w.notifications.Notify(ctx, *contract.TechnicianID,
		domain.NotificationMaintenanceDue,
		fmt.Sprintf("Maintenance due %s", payload.DueDate),
		contract.Title)
}

func (w *NotificationWorker) handleAppointmentDecided(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentDecidedPayload)
	if !ok || payload.Status != domain.AppointmentStatusConverted {
		return nil
	}
	if event.ActorID == "" {
		return nil
	}
	return w.notifications.Notify(ctx, event.ActorID,
		domain.NotificationAppointmentConverted,
		"Appointment converted to maintenance contract", "")
}
