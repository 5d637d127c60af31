package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/events"
)

func agendaFixtureRow(id string, day time.Time) agenda.Row {
	start := day
	return agenda.Row{
		EventID:    id,
		EventType:  agenda.TypeOrder,
		StartTime:  &start,
		ClientID:   "client-1",
		ClientName: "client one",
		Status:     "open",
		Priority:   "medium",
		Title:      "order " + id,
		CreatedAt:  day,
	}
}

func TestAgendaLoadMonthKeepsSnapshotOnError(t *testing.T) {
	day := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	repo := &stubAgendaRepo{rows: []agenda.Row{agendaFixtureRow("order-1", day)}}
	svc := NewAgendaService(repo, newStubClientRepo("client-1"), newStubProfileRepo(), nil, nil)
	ctx := context.Background()

	view, err := svc.LoadMonth(ctx, day, agenda.TechnicianFilterAll)
	require.NoError(t, err)
	require.Equal(t, 1, view.Schedule.Total())

	repo.fetchErr = errors.New("connection refused")
	view, err = svc.LoadMonth(ctx, day, agenda.TechnicianFilterAll)
	require.Error(t, err)
	require.NotNil(t, view)
	require.Equal(t, 1, view.Schedule.Total())
	require.Same(t, view, svc.Snapshot(day, agenda.TechnicianFilterAll))
}

func TestAgendaSnapshotsKeyedPerWindow(t *testing.T) {
	january := time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	repo := &stubAgendaRepo{rows: []agenda.Row{agendaFixtureRow("order-1", january)}}
	svc := NewAgendaService(repo, newStubClientRepo("client-1"), newStubProfileRepo(), nil, nil)
	ctx := context.Background()

	// Two users interleave loads over different windows; neither load
	// disturbs what the other is looking at.
	adminView, err := svc.LoadMonth(ctx, january, agenda.TechnicianFilterAll)
	require.NoError(t, err)
	techView, err := svc.LoadMonth(ctx, february, "tech-7")
	require.NoError(t, err)

	require.Same(t, adminView, svc.Snapshot(january, agenda.TechnicianFilterAll))
	require.Same(t, techView, svc.Snapshot(february, "tech-7"))
	require.Nil(t, svc.Snapshot(february, agenda.TechnicianFilterAll))
}

func TestAgendaDeleteEventReloads(t *testing.T) {
	day := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	repo := &stubAgendaRepo{rows: []agenda.Row{
		agendaFixtureRow("order-1", day),
		agendaFixtureRow("order-2", day),
	}}
	dispatcher := events.NewInMemoryDispatcher()
	var deletedEvents []events.Event
	dispatcher.Subscribe(events.EventAgendaEntryDeleted, func(_ context.Context, event events.Event) error {
		deletedEvents = append(deletedEvents, event)
		return nil
	})
	svc := NewAgendaService(repo, newStubClientRepo("client-1"), newStubProfileRepo(), dispatcher, nil)
	ctx := context.Background()

	_, err := svc.LoadMonth(ctx, day, agenda.TechnicianFilterAll)
	require.NoError(t, err)

	repo.rows = repo.rows[:1]
	view, err := svc.DeleteEvent(ctx, agenda.TypeOrder, "order-2", "admin-1", day, agenda.TechnicianFilterAll)
	require.NoError(t, err)
	require.Equal(t, []string{"order/order-2"}, repo.deleted)
	require.Equal(t, 1, view.Schedule.Total())
	require.Len(t, deletedEvents, 1)
}
