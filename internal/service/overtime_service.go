package service

import (
	"context"
	"strings"
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// OvertimeService tracks extra hours and their approval.
type OvertimeService struct {
	entries    repository.OvertimeRepository
	dispatcher events.Dispatcher
}

// OvertimeInput describes an overtime submission.
type OvertimeInput struct {
	WorkDate time.Time
	Hours    float64
	Reason   string
}

// NewOvertimeService constructs the service.
func NewOvertimeService(entries repository.OvertimeRepository, dispatcher events.Dispatcher) *OvertimeService {
	return &OvertimeService{entries: entries, dispatcher: dispatcher}
}

// Submit records a pending overtime entry for the calling technician.
func (s *OvertimeService) Submit(ctx context.Context, technicianID string, input OvertimeInput) (*domain.OvertimeEntry, error) {
	if input.WorkDate.IsZero() {
		return nil, util.NewValidationError("work_date is required", nil)
	}
	if input.Hours <= 0 || input.Hours > 24 {
		return nil, util.NewValidationError("hours must be between 0 and 24", map[string]any{"hours": input.Hours})
	}

	entry := &domain.OvertimeEntry{
		TechnicianID: technicianID,
		WorkDate:     input.WorkDate,
		Hours:        input.Hours,
		Reason:       strings.TrimSpace(input.Reason),
		Status:       domain.OvertimeStatusPending,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventOvertimeSubmitted,
		ActorID: technicianID,
		Payload: events.OvertimeReviewedPayload{EntryID: entry.ID, TechnicianID: technicianID, Status: entry.Status},
	})
	return entry, nil
}

// Review approves or rejects a pending entry.
func (s *OvertimeService) Review(ctx context.Context, reviewerID, id string, status domain.OvertimeStatus) (*domain.OvertimeEntry, error) {
	if status != domain.OvertimeStatusApproved && status != domain.OvertimeStatusRejected {
		return nil, util.NewValidationError("review must approve or reject", map[string]any{"status": string(status)})
	}
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.OvertimeStatusPending {
		return nil, util.NewConflict("entry already reviewed", map[string]any{"status": string(entry.Status)})
	}

	if err := s.entries.Review(ctx, id, status, reviewerID); err != nil {
		return nil, err
	}
	entry.Status = status
	entry.ReviewedBy = &reviewerID
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventOvertimeReviewed,
		ActorID: reviewerID,
		Payload: events.OvertimeReviewedPayload{EntryID: entry.ID, TechnicianID: entry.TechnicianID, Status: status},
	})
	return entry, nil
}

// Delete removes an entry.
func (s *OvertimeService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

// Get fetches an entry.
func (s *OvertimeService) Get(ctx context.Context, id string) (*domain.OvertimeEntry, error) {
	return s.entries.GetByID(ctx, id)
}

// ListByTechnician returns a technician's entries in a date window.
func (s *OvertimeService) ListByTechnician(ctx context.Context, technicianID string, from, to time.Time) ([]domain.OvertimeEntry, error) {
	return s.entries.ListByTechnician(ctx, technicianID, from, to)
}

// ListPending returns all entries awaiting review.
func (s *OvertimeService) ListPending(ctx context.Context) ([]domain.OvertimeEntry, error) {
	return s.entries.ListPending(ctx)
}
