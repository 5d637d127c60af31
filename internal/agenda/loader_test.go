package agenda

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

type stubSource struct {
	rows []Row
	err  error

	gotFrom, gotTo time.Time
	gotTechnician  string
}

func (s *stubSource) FetchRange(ctx context.Context, from, to time.Time, technicianID string) ([]Row, error) {
	s.gotFrom, s.gotTo, s.gotTechnician = from, to, technicianID
	return s.rows, s.err
}

type stubClients struct {
	clients []domain.Client
	err     error
}

func (s *stubClients) ListActive(ctx context.Context) ([]domain.Client, error) {
	return s.clients, s.err
}

type stubTechnicians struct {
	profiles []domain.Profile
	err      error
}

func (s *stubTechnicians) ListTechnicians(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles, s.err
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(time.Date(2025, 2, 14, 18, 0, 0, 0, time.UTC))
	require.Equal(t, "2025-02-01", first.Format(DateLayout))
	require.Equal(t, "2025-02-28", last.Format(DateLayout))

	first, last = MonthRange(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "2024-02-29", last.Format(DateLayout))
	require.Equal(t, "2024-02-01", first.Format(DateLayout))
}

func TestLoadMonthPartitionsAndKeepsRosters(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	source := &stubSource{rows: []Row{
		dateRow(TypeOrder, "o1", day),
		dateRow(TypeQuote, "q1", day),
	}}
	loader := NewLoader(source,
		&stubClients{clients: []domain.Client{{ID: "c1", Name: "Acme Cooling"}}},
		&stubTechnicians{profiles: []domain.Profile{{ID: "p1", Role: domain.RoleTechnician}}},
	)

	view, err := loader.LoadMonth(context.Background(), day, TechnicianFilterAll)
	require.NoError(t, err)
	require.Len(t, view.Schedule.Orders, 1)
	require.Len(t, view.Schedule.Quotes, 1)
	require.Len(t, view.Clients, 1)
	require.Len(t, view.Technicians, 1)

	// The "all" sentinel translates to an unfiltered fetch.
	require.Empty(t, source.gotTechnician)
	require.Equal(t, "2025-01-01", source.gotFrom.Format(DateLayout))
	require.Equal(t, "2025-01-31", source.gotTo.Format(DateLayout))

	require.Same(t, view, loader.Snapshot(day, TechnicianFilterAll))
}

func TestLoadMonthKeepsLastDayEvents(t *testing.T) {
	// The range upper bound is midnight on the last calendar day; an event
	// later that day is chronologically after it but still in the month.
	morning := time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC)
	source := &stubSource{rows: []Row{dateRow(TypeOrder, "o1", morning)}}
	loader := NewLoader(source, &stubClients{}, &stubTechnicians{})

	view, err := loader.LoadMonth(context.Background(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), TechnicianFilterAll)
	require.NoError(t, err)

	_, last := MonthRange(morning)
	require.True(t, morning.After(last))
	require.Len(t, view.Schedule.EventsForDay("2025-02-28", TypeFilterAll), 1)
}

func TestLoadMonthTechnicianFilterPassedThrough(t *testing.T) {
	source := &stubSource{}
	loader := NewLoader(source, &stubClients{}, &stubTechnicians{})

	_, err := loader.LoadMonth(context.Background(), time.Now(), "tech-42")
	require.NoError(t, err)
	require.Equal(t, "tech-42", source.gotTechnician)
}

func TestLoadMonthErrorLeavesSnapshotUntouched(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	source := &stubSource{rows: []Row{dateRow(TypeOrder, "o1", day)}}
	clients := &stubClients{}
	loader := NewLoader(source, clients, &stubTechnicians{})

	good, err := loader.LoadMonth(context.Background(), day, TechnicianFilterAll)
	require.NoError(t, err)

	clients.err = errors.New("roster unavailable")
	_, err = loader.LoadMonth(context.Background(), day, TechnicianFilterAll)
	require.Error(t, err)

	// Stale-but-visible: the previous load of this window is still served.
	require.Same(t, good, loader.Snapshot(day, TechnicianFilterAll))
}

func TestLoadMonthWindowsAreIndependent(t *testing.T) {
	january := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	source := &stubSource{rows: []Row{dateRow(TypeOrder, "o1", january)}}
	loader := NewLoader(source, &stubClients{}, &stubTechnicians{})

	all, err := loader.LoadMonth(context.Background(), january, TechnicianFilterAll)
	require.NoError(t, err)
	filtered, err := loader.LoadMonth(context.Background(), january, "tech-42")
	require.NoError(t, err)
	nextMonth, err := loader.LoadMonth(context.Background(), february, TechnicianFilterAll)
	require.NoError(t, err)

	// Each (month, technician) pair keeps its own snapshot: one caller's
	// load never replaces what another caller is looking at.
	require.Same(t, all, loader.Snapshot(january, TechnicianFilterAll))
	require.Same(t, filtered, loader.Snapshot(january, "tech-42"))
	require.Same(t, nextMonth, loader.Snapshot(february, TechnicianFilterAll))
	require.Nil(t, loader.Snapshot(february, "tech-42"))

	// An unfiltered load and the empty-string filter address the same window.
	require.Same(t, all, loader.Snapshot(january, ""))
}

// blockFirstSource stalls the first fetch until released; later fetches
// return immediately.
type blockFirstSource struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	rows    []Row
}

func (s *blockFirstSource) FetchRange(ctx context.Context, from, to time.Time, technicianID string) ([]Row, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()
	if first {
		close(s.started)
		<-s.release
	}
	return s.rows, nil
}

func TestLoadMonthDiscardsStaleGeneration(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	source := &blockFirstSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		rows:    []Row{dateRow(TypeTicket, "t1", day)},
	}
	loader := NewLoader(source, &stubClients{}, &stubTechnicians{})

	done := make(chan error, 1)
	go func() {
		_, err := loader.LoadMonth(context.Background(), day, TechnicianFilterAll)
		done <- err
	}()
	<-source.started

	// A second load supersedes the stalled one.
	view, err := loader.LoadMonth(context.Background(), day, TechnicianFilterAll)
	require.NoError(t, err)

	close(source.release)
	require.ErrorIs(t, <-done, ErrStaleLoad)

	// The newer load's snapshot survives.
	require.Same(t, view, loader.Snapshot(day, TechnicianFilterAll))
}
