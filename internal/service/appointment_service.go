package service

import (
	"context"
	"strings"
	"time"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// AppointmentService coordinates appointment request triage. Conversion into
// a maintenance contract goes through a single stored function so the
// multi-table effect stays atomic on the backend.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	clients      repository.ClientRepository
	dispatcher   events.Dispatcher
}

// AppointmentInput describes appointment creation/update payload.
type AppointmentInput struct {
	ClientID      string
	TechnicianID  *string
	Title         string
	Description   string
	RequestedDate time.Time
	Priority      domain.Priority
}

// NewAppointmentService constructs the service.
func NewAppointmentService(appointments repository.AppointmentRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{appointments: appointments, clients: clients, dispatcher: dispatcher}
}

// Create registers a pending appointment request.
func (s *AppointmentService) Create(ctx context.Context, actorID string, input AppointmentInput) (*domain.AppointmentRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if input.RequestedDate.IsZero() {
		return nil, util.NewValidationError("requested_date is required", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	appointment := &domain.AppointmentRequest{
		ClientID:      input.ClientID,
		TechnicianID:  input.TechnicianID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		RequestedDate: input.RequestedDate,
		Status:        domain.AppointmentStatusPending,
		Priority:      input.Priority,
	}
	if appointment.Priority == "" {
		appointment.Priority = domain.PriorityMedium
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeAppointment, EntityID: appointment.ID, ClientID: appointment.ClientID},
	})
	return appointment, nil
}

// Update edits a request while it is still pending or confirmed.
func (s *AppointmentService) Update(ctx context.Context, actorID, id string, input AppointmentInput) (*domain.AppointmentRequest, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == domain.AppointmentStatusConverted {
		return nil, util.NewConflict("converted appointments are read-only", nil)
	}
	appointment.TechnicianID = input.TechnicianID
	appointment.Title = strings.TrimSpace(input.Title)
	appointment.Description = strings.TrimSpace(input.Description)
	if !input.RequestedDate.IsZero() {
		appointment.RequestedDate = input.RequestedDate
	}
	if input.Priority != "" {
		appointment.Priority = input.Priority
	}
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeAppointment, EntityID: appointment.ID, ClientID: appointment.ClientID},
	})
	return appointment, nil
}

// Decide confirms or cancels a pending request.
func (s *AppointmentService) Decide(ctx context.Context, actorID, id string, status domain.AppointmentStatus) (*domain.AppointmentRequest, error) {
	if status != domain.AppointmentStatusConfirmed && status != domain.AppointmentStatusCancelled {
		return nil, util.NewValidationError("decision must confirm or cancel", map[string]any{"status": string(status)})
	}
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status != domain.AppointmentStatusPending {
		return nil, util.NewConflict("only pending appointments can be decided", map[string]any{"status": string(appointment.Status)})
	}

	appointment.Status = status
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAppointmentDecided,
		ActorID: actorID,
		Payload: events.AppointmentDecidedPayload{AppointmentID: appointment.ID, Status: status},
	})
	return appointment, nil
}

// Convert promotes a confirmed request into a maintenance contract and
// returns the new contract id.
func (s *AppointmentService) Convert(ctx context.Context, actorID, id string, frequency domain.MaintenanceFrequency) (string, error) {
	if !frequency.Valid() {
		return "", util.NewValidationError("unknown maintenance frequency", map[string]any{"frequency": string(frequency)})
	}
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if appointment.Status != domain.AppointmentStatusConfirmed {
		return "", util.NewConflict("only confirmed appointments can be converted", map[string]any{"status": string(appointment.Status)})
	}

	contractID, err := s.appointments.Convert(ctx, id, frequency)
	if err != nil {
		return "", err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAppointmentDecided,
		ActorID: actorID,
		Payload: events.AppointmentDecidedPayload{
			AppointmentID: appointment.ID,
			Status:        domain.AppointmentStatusConverted,
			ContractID:    &contractID,
		},
	})
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: contractID, ClientID: appointment.ClientID},
	})
	return contractID, nil
}

// Delete removes a request.
func (s *AppointmentService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeAppointment, EntityID: id},
	})
	return nil
}

// Get fetches a request.
func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.AppointmentRequest, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns paginated requests.
func (s *AppointmentService) List(ctx context.Context, limit, offset int) ([]domain.AppointmentRequest, error) {
	return s.appointments.List(ctx, limit, offset)
}
