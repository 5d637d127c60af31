package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/events"
)

func TestOvertimeSubmitValidation(t *testing.T) {
	svc := NewOvertimeService(newStubOvertimeRepo(), nil)
	ctx := context.Background()
	workDate := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	_, err := svc.Submit(ctx, "tech-1", OvertimeInput{Hours: 2})
	requireCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Submit(ctx, "tech-1", OvertimeInput{WorkDate: workDate, Hours: 0})
	requireCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Submit(ctx, "tech-1", OvertimeInput{WorkDate: workDate, Hours: 25})
	requireCode(t, err, "VALIDATION_FAILED")

	entry, err := svc.Submit(ctx, "tech-1", OvertimeInput{WorkDate: workDate, Hours: 3.5, Reason: "  emergency call  "})
	require.NoError(t, err)
	require.Equal(t, domain.OvertimeStatusPending, entry.Status)
	require.Equal(t, "emergency call", entry.Reason)
}

func TestOvertimeReview(t *testing.T) {
	repo := newStubOvertimeRepo(&domain.OvertimeEntry{
		ID:           "overtime-1",
		TechnicianID: "tech-1",
		WorkDate:     time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Hours:        3,
		Status:       domain.OvertimeStatusPending,
	})
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventOvertimeReviewed, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})
	svc := NewOvertimeService(repo, dispatcher)
	ctx := context.Background()

	_, err := svc.Review(ctx, "admin-1", "overtime-1", domain.OvertimeStatusPending)
	requireCode(t, err, "VALIDATION_FAILED")

	entry, err := svc.Review(ctx, "admin-1", "overtime-1", domain.OvertimeStatusApproved)
	require.NoError(t, err)
	require.Equal(t, domain.OvertimeStatusApproved, entry.Status)
	require.NotNil(t, entry.ReviewedBy)
	require.Equal(t, "admin-1", *entry.ReviewedBy)
	require.Len(t, published, 1)

	// second review hits the already-decided entry
	_, err = svc.Review(ctx, "admin-1", "overtime-1", domain.OvertimeStatusRejected)
	requireCode(t, err, "CONFLICT")
}
