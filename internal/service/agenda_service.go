package service

import (
	"context"
	"errors"
	"time"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/observability"
	"github.com/eletroclima/fieldops-service/internal/repository"
)

// AgendaService exposes the unified month view and the cross-type delete.
type AgendaService struct {
	loader     *agenda.Loader
	repo       repository.AgendaRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// NewAgendaService wires the loader over the agenda repository and rosters.
func NewAgendaService(repo repository.AgendaRepository, clients repository.ClientRepository, profiles repository.ProfileRepository, dispatcher events.Dispatcher, metrics *observability.Metrics) *AgendaService {
	return &AgendaService{
		loader:     agenda.NewLoader(repo, clients, profiles),
		repo:       repo,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

// LoadMonth loads the month containing anchor. A load superseded while in
// flight reports stale and surfaces the newer snapshot instead.
func (s *AgendaService) LoadMonth(ctx context.Context, anchor time.Time, technicianID string) (*agenda.MonthView, error) {
	view, err := s.loader.LoadMonth(ctx, anchor, technicianID)
	switch {
	case err == nil:
		s.recordLoad("ok")
		return view, nil
	case errors.Is(err, agenda.ErrStaleLoad):
		s.recordLoad("stale")
		return s.loader.Snapshot(anchor, technicianID), nil
	default:
		s.recordLoad("error")
		// the previous snapshot of this window stays visible while the
		// caller retries
		return s.loader.Snapshot(anchor, technicianID), err
	}
}

// Snapshot returns the last good view for the requested window without
// reloading, or nil if that window was never loaded.
func (s *AgendaService) Snapshot(anchor time.Time, technicianID string) *agenda.MonthView {
	return s.loader.Snapshot(anchor, technicianID)
}

// DeleteEvent removes the backing record for one agenda entry, then reloads
// the caller's window so the view reflects the removal.
func (s *AgendaService) DeleteEvent(ctx context.Context, eventType agenda.EventType, id string, actorID string, anchor time.Time, technicianID string) (*agenda.MonthView, error) {
	if err := s.repo.DeleteEvent(ctx, eventType, id); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: eventType, EntityID: id},
	})
	return s.LoadMonth(ctx, anchor, technicianID)
}

func (s *AgendaService) recordLoad(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordAgendaLoad(outcome)
	}
}
