package service

import (
	"context"
	"strings"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// TicketService coordinates support ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
}

// TicketInput describes ticket creation/update payload.
type TicketInput struct {
	ClientID     string
	EquipmentID  *string
	TechnicianID *string
	Title        string
	Description  string
	Priority     domain.Priority
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, clients: clients, dispatcher: dispatcher}
}

// Create opens a ticket.
func (s *TicketService) Create(ctx context.Context, actorID string, input TicketInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ClientID:     input.ClientID,
		EquipmentID:  input.EquipmentID,
		TechnicianID: input.TechnicianID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Status:       domain.TicketStatusOpen,
		Priority:     input.Priority,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.PriorityMedium
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeTicket, EntityID: ticket.ID, ClientID: ticket.ClientID},
	})
	return ticket, nil
}

// Update edits a ticket.
func (s *TicketService) Update(ctx context.Context, actorID, id string, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ticket.EquipmentID = input.EquipmentID
	ticket.TechnicianID = input.TechnicianID
	ticket.Title = strings.TrimSpace(input.Title)
	ticket.Description = strings.TrimSpace(input.Description)
	if input.Priority != "" {
		ticket.Priority = input.Priority
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeTicket, EntityID: ticket.ID, ClientID: ticket.ClientID},
	})
	return ticket, nil
}

// ChangeStatus transitions the ticket lifecycle.
func (s *TicketService) ChangeStatus(ctx context.Context, actorID, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown ticket status", map[string]any{"status": string(status)})
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == status {
		return ticket, nil
	}

	old := ticket.Status
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventTicketStatusChanged,
		ActorID: actorID,
		Payload: events.TicketStatusChangedPayload{TicketID: ticket.ID, OldStatus: old, NewStatus: status},
	})
	return ticket, nil
}

// Delete removes a ticket.
func (s *TicketService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeTicket, EntityID: id},
	})
	return nil
}

// Get fetches a ticket.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// List returns tickets matching the filter.
func (s *TicketService) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, filter)
}
