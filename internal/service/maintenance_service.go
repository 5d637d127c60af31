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

// MaintenanceService manages recurring preventive maintenance contracts.
type MaintenanceService struct {
	contracts  repository.MaintenanceRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
}

// MaintenanceInput describes contract creation/update payload.
type MaintenanceInput struct {
	ClientID     string
	EquipmentID  *string
	TechnicianID *string
	Title        string
	Frequency    domain.MaintenanceFrequency
	StartDate    time.Time
	MonthlyCents int64
}

// NewMaintenanceService constructs the service.
func NewMaintenanceService(contracts repository.MaintenanceRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *MaintenanceService {
	return &MaintenanceService{contracts: contracts, clients: clients, dispatcher: dispatcher}
}

// Create opens a contract. The first visit is scheduled one full cadence
// after the start date.
func (s *MaintenanceService) Create(ctx context.Context, actorID string, input MaintenanceInput) (*domain.MaintenanceContract, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if !input.Frequency.Valid() {
		return nil, util.NewValidationError("unknown maintenance frequency", map[string]any{"frequency": string(input.Frequency)})
	}
	if input.StartDate.IsZero() {
		return nil, util.NewValidationError("start_date is required", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	contract := &domain.MaintenanceContract{
		ClientID:            input.ClientID,
		EquipmentID:         input.EquipmentID,
		TechnicianID:        input.TechnicianID,
		Title:               strings.TrimSpace(input.Title),
		Frequency:           input.Frequency,
		StartDate:           input.StartDate,
		NextMaintenanceDate: input.StartDate.AddDate(0, input.Frequency.Months(), 0),
		Status:              domain.MaintenanceStatusActive,
		MonthlyCents:        input.MonthlyCents,
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: contract.ID, ClientID: contract.ClientID},
	})
	return contract, nil
}

// Update edits contract fields. Changing the frequency does not reschedule
// the already planned next visit.
func (s *MaintenanceService) Update(ctx context.Context, actorID, id string, input MaintenanceInput) (*domain.MaintenanceContract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Frequency != "" && !input.Frequency.Valid() {
		return nil, util.NewValidationError("unknown maintenance frequency", map[string]any{"frequency": string(input.Frequency)})
	}
	contract.EquipmentID = input.EquipmentID
	contract.TechnicianID = input.TechnicianID
	contract.Title = strings.TrimSpace(input.Title)
	if input.Frequency != "" {
		contract.Frequency = input.Frequency
	}
	contract.MonthlyCents = input.MonthlyCents
	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: contract.ID, ClientID: contract.ClientID},
	})
	return contract, nil
}

// SetStatus pauses, resumes or ends a contract.
func (s *MaintenanceService) SetStatus(ctx context.Context, actorID, id string, status domain.MaintenanceStatus) (*domain.MaintenanceContract, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown contract status", map[string]any{"status": string(status)})
	}
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contract.Status = status
	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: contract.ID, ClientID: contract.ClientID},
	})
	return contract, nil
}

// CompleteVisit records that the due visit happened and rolls the next date
// forward one cadence.
func (s *MaintenanceService) CompleteVisit(ctx context.Context, actorID, id string) (*domain.MaintenanceContract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := contract.NextMaintenanceDate.AddDate(0, contract.Frequency.Months(), 0)
	if err := s.contracts.AdvanceNextDate(ctx, id, next); err != nil {
		return nil, err
	}
	contract.NextMaintenanceDate = next
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: contract.ID, ClientID: contract.ClientID},
	})
	return contract, nil
}

// Delete removes a contract.
func (s *MaintenanceService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.contracts.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeMaintenance, EntityID: id},
	})
	return nil
}

// Get fetches a contract.
func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.MaintenanceContract, error) {
	return s.contracts.GetByID(ctx, id)
}

// List returns paginated contracts.
func (s *MaintenanceService) List(ctx context.Context, limit, offset int) ([]domain.MaintenanceContract, error) {
	return s.contracts.List(ctx, limit, offset)
}

// DueBy returns active contracts whose next visit falls on or before the
// deadline; used by the scheduler and the dashboard due list.
func (s *MaintenanceService) DueBy(ctx context.Context, deadline time.Time) ([]domain.MaintenanceContract, error) {
	return s.contracts.ListDueBy(ctx, deadline)
}
