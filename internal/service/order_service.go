package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// OrderService coordinates service order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
}

// OrderInput describes order creation/update payload.
type OrderInput struct {
	ClientID      string
	EquipmentID   *string
	TechnicianID  *string
	Title         string
	Description   string
	Priority      domain.Priority
	ScheduledDate *time.Time
	TotalCents    int64
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, clients: clients, dispatcher: dispatcher}
}

// Create opens a new service order with a generated human-facing number.
func (s *OrderService) Create(ctx context.Context, actorID string, input OrderInput) (*domain.ServiceOrder, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	order := &domain.ServiceOrder{
		Number:        generateOrderNumber(),
		ClientID:      input.ClientID,
		EquipmentID:   input.EquipmentID,
		TechnicianID:  input.TechnicianID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Status:        domain.OrderStatusOpen,
		Priority:      input.Priority,
		ScheduledDate: input.ScheduledDate,
		TotalCents:    input.TotalCents,
	}
	if order.Priority == "" {
		order.Priority = domain.PriorityMedium
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeOrder, EntityID: order.ID, ClientID: order.ClientID},
	})
	return order, nil
}

// Update edits mutable order fields without touching status.
func (s *OrderService) Update(ctx context.Context, actorID, id string, input OrderInput) (*domain.ServiceOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.EquipmentID = input.EquipmentID
	order.TechnicianID = input.TechnicianID
	order.Title = strings.TrimSpace(input.Title)
	order.Description = strings.TrimSpace(input.Description)
	if input.Priority != "" {
		order.Priority = input.Priority
	}
	order.ScheduledDate = input.ScheduledDate
	order.TotalCents = input.TotalCents
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeOrder, EntityID: order.ID, ClientID: order.ClientID},
	})
	return order, nil
}

// ChangeStatus transitions the order lifecycle. Completing an order stamps
// completed_at.
func (s *OrderService) ChangeStatus(ctx context.Context, actorID, id string, status domain.OrderStatus) (*domain.ServiceOrder, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown order status", map[string]any{"status": string(status)})
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}

	old := order.Status
	order.Status = status
	if status == domain.OrderStatusCompleted {
		now := time.Now()
		order.CompletedAt = &now
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventOrderStatusChanged,
		ActorID: actorID,
		Payload: events.OrderStatusChangedPayload{OrderID: order.ID, OldStatus: old, NewStatus: status},
	})
	return order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeOrder, EntityID: id},
	})
	return nil
}

// Get fetches an order.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns orders matching the filter.
func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]domain.ServiceOrder, error) {
	return s.orders.List(ctx, filter)
}

func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "OS-" + time.Now().Format("20060102") + "-" + suffix
}
