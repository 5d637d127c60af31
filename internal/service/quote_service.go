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

// QuoteService manages priced proposals.
type QuoteService struct {
	quotes     repository.QuoteRepository
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
}

// QuoteInput describes quote creation/update payload.
type QuoteInput struct {
	ClientID     string
	TechnicianID *string
	Title        string
	Description  string
	TotalCents   int64
	ValidUntil   *time.Time
}

// NewQuoteService constructs the service.
func NewQuoteService(quotes repository.QuoteRepository, clients repository.ClientRepository, dispatcher events.Dispatcher) *QuoteService {
	return &QuoteService{quotes: quotes, clients: clients, dispatcher: dispatcher}
}

// Create drafts a quote.
func (s *QuoteService) Create(ctx context.Context, actorID string, input QuoteInput) (*domain.Quote, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewValidationError("title is required", nil)
	}
	if input.TotalCents < 0 {
		return nil, util.NewValidationError("total must not be negative", nil)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		ClientID:     input.ClientID,
		TechnicianID: input.TechnicianID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Status:       domain.QuoteStatusDraft,
		TotalCents:   input.TotalCents,
		ValidUntil:   input.ValidUntil,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryCreated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeQuote, EntityID: quote.ID, ClientID: quote.ClientID},
	})
	return quote, nil
}

// Update edits a draft or sent quote. Decided quotes are read-only.
func (s *QuoteService) Update(ctx context.Context, actorID, id string, input QuoteInput) (*domain.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.QuoteStatusDraft && quote.Status != domain.QuoteStatusSent {
		return nil, util.NewConflict("decided quotes are read-only", map[string]any{"status": string(quote.Status)})
	}
	if input.TotalCents < 0 {
		return nil, util.NewValidationError("total must not be negative", nil)
	}
	quote.TechnicianID = input.TechnicianID
	quote.Title = strings.TrimSpace(input.Title)
	quote.Description = strings.TrimSpace(input.Description)
	quote.TotalCents = input.TotalCents
	quote.ValidUntil = input.ValidUntil
	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeQuote, EntityID: quote.ID, ClientID: quote.ClientID},
	})
	return quote, nil
}

// ChangeStatus moves a quote through its lifecycle. Only forward moves are
// allowed: draft to sent, sent to approved/rejected/expired.
func (s *QuoteService) ChangeStatus(ctx context.Context, actorID, id string, status domain.QuoteStatus) (*domain.Quote, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown quote status", map[string]any{"status": string(status)})
	}
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quoteTransitionAllowed(quote.Status, status) {
		return nil, util.NewConflict("invalid quote transition", map[string]any{
			"from": string(quote.Status),
			"to":   string(status),
		})
	}

	quote.Status = status
	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryUpdated,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeQuote, EntityID: quote.ID, ClientID: quote.ClientID},
	})
	return quote, nil
}

// Delete removes a quote.
func (s *QuoteService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventAgendaEntryDeleted,
		ActorID: actorID,
		Payload: events.AgendaEntryPayload{EntityType: agenda.TypeQuote, EntityID: id},
	})
	return nil
}

// Get fetches a quote.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

// List returns paginated quotes.
func (s *QuoteService) List(ctx context.Context, limit, offset int) ([]domain.Quote, error) {
	return s.quotes.List(ctx, limit, offset)
}

// ListByClient returns a client's quotes.
func (s *QuoteService) ListByClient(ctx context.Context, clientID string) ([]domain.Quote, error) {
	return s.quotes.ListByClient(ctx, clientID)
}

func quoteTransitionAllowed(from, to domain.QuoteStatus) bool {
	switch from {
	case domain.QuoteStatusDraft:
		return to == domain.QuoteStatusSent
	case domain.QuoteStatusSent:
		return to == domain.QuoteStatusApproved || to == domain.QuoteStatusRejected || to == domain.QuoteStatusExpired
	}
	return false
}
