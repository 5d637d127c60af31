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

// InstallationService manages one-off install projects.
type InstallationService struct {
	installations repository.InstallationRepository
	clients       repository.ClientRepository
	dispatcher    events.Dispatcher
}

// InstallationInput describes installation creation/update payload.
type InstallationInput struct {
	ClientID     string
	TechnicianID *string
	Title        string
	Description  string
	StartDate    time.Time
}

// NewInstallationService constructs the service.
func NewInstallationService(installations repository.InstallationRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *InstallationService {
	return &InstallationService{installations: installations, clients: clients, dispatcher: dispatcher}
}

// Create schedules an installation project.
func (s *InstallationService) Create(ctx context.Context, actorID string, input InstallationInput) (*domain.Installation, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if input.StartDate.IsZero() {
		return nil, util.NewValidationError("start_date is required", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	installation := &domain.Installation{
		ClientID:     input.ClientID,
		TechnicianID: input.TechnicianID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		StartDate:    input.StartDate,
		Status:       domain.InstallationStatusScheduled,
	}
	if err := s.installations.Create(ctx, installation); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeInstallation, EntityID: installation.ID, ClientID: installation.ClientID},
	})
	return installation, nil
}

// Update edits a project.
func (s *InstallationService) Update(ctx context.Context, actorID, id string, input InstallationInput) (*domain.Installation, error) {
	installation, err := s.installations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	installation.TechnicianID = input.TechnicianID
	installation.Title = strings.TrimSpace(input.Title)
	installation.Description = strings.TrimSpace(input.Description)
	if !input.StartDate.IsZero() {
		installation.StartDate = input.StartDate
	}
	if err := s.installations.Update(ctx, installation); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeInstallation, EntityID: installation.ID, ClientID: installation.ClientID},
	})
	return installation, nil
}

// ChangeStatus transitions the project lifecycle.
func (s *InstallationService) ChangeStatus(ctx context.Context, actorID, id string, status domain.InstallationStatus) (*domain.Installation, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown installation status", map[string]any{"status": string(status)})
	}
	installation, err := s.installations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	installation.Status = status
	if err := s.installations.Update(ctx, installation); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeInstallation, EntityID: installation.ID, ClientID: installation.ClientID},
	})
	return installation, nil
}

// Delete removes a project.
func (s *InstallationService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.installations.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeInstallation, EntityID: id},
	})
	return nil
}

// Get fetches a project.
func (s *InstallationService) Get(ctx context.Context, id string) (*domain.Installation, error) {
	return s.installations.GetByID(ctx, id)
}

// List returns paginated projects.
func (s *InstallationService) List(ctx context.Context, limit, offset int) ([]domain.Installation, error) {
	return s.installations.List(ctx, limit, offset)
}
