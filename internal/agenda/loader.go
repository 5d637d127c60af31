package agenda

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// ErrStaleLoad marks a load superseded by a newer one before it finished.
// Its result is discarded and the previous snapshot stays visible.
var ErrStaleLoad = errors.New("agenda: load superseded by a newer request")

// Source reads the unified view filtered to a closed date range and an
// optional technician.
type Source interface {
	FetchRange(ctx context.Context, from, to time.Time, technicianID string) ([]Row, error)
}

// ClientRoster lists active clients for the new-appointment form.
type ClientRoster interface {
	ListActive(ctx context.Context) ([]domain.Client, error)
}

// TechnicianRoster lists technicians eligible for the filter dropdown.
type TechnicianRoster interface {
	ListTechnicians(ctx context.Context) ([]domain.Profile, error)
}

// MonthView is one fully loaded month plus the rosters fetched alongside it.
type MonthView struct {
	Anchor      time.Time
	Technician  string
	Schedule    Schedule
	Clients     []domain.Client
	Technicians []domain.Profile
	LoadedAt    time.Time
}

// MonthRange returns the first and last calendar day (inclusive) of the month
// containing anchor, in anchor's location.
func MonthRange(anchor time.Time) (first, last time.Time) {
	first = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last = first.AddDate(0, 1, -1)
	return first, last
}

// windowKey identifies one loaded window: a calendar month plus the
// technician filter it was loaded with.
type windowKey struct {
	month      string
	technician string
}

func keyFor(anchor time.Time, technicianID string) windowKey {
	tech := technicianID
	if tech == "" {
		tech = TechnicianFilterAll
	}
	return windowKey{month: anchor.Format("2006-01"), technician: tech}
}

type window struct {
	generation uint64
	view       *MonthView
}

// Loader orchestrates month loads and keeps the last good snapshot per
// (month, technician) window, so concurrent callers looking at different
// months or filters never clobber each other. Within one window a monotonic
// generation counter guards against the late arrival of a load that was
// superseded while in flight: the stale result is dropped instead of
// overwriting the newer one.
type Loader struct {
	source      Source
	clients     ClientRoster
	technicians TechnicianRoster

	mu      sync.Mutex
	windows map[windowKey]*window
}

// NewLoader wires a loader over its three independent sources.
func NewLoader(source Source, clients ClientRoster, technicians TechnicianRoster) *Loader {
	return &Loader{
		source:      source,
		clients:     clients,
		technicians: technicians,
		windows:     make(map[windowKey]*window),
	}
}

// LoadMonth fetches the unified view for the month containing anchor plus the
// two rosters. The three fetches run concurrently and are order-insensitive.
// technicianID narrows the view unless it is TechnicianFilterAll or empty.
// Any fetch error aborts the whole load and leaves the previous snapshot
// untouched.
func (l *Loader) LoadMonth(ctx context.Context, anchor time.Time, technicianID string) (*MonthView, error) {
	key := keyFor(anchor, technicianID)
	l.mu.Lock()
	win, ok := l.windows[key]
	if !ok {
		win = &window{}
		l.windows[key] = win
	}
	win.generation++
	gen := win.generation
	l.mu.Unlock()

	first, last := MonthRange(anchor)
	filter := technicianID
	if filter == TechnicianFilterAll {
		filter = ""
	}

	var (
		rows        []Row
		clients     []domain.Client
		technicians []domain.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = l.source.FetchRange(gctx, first, last, filter)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = l.clients.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		technicians, err = l.technicians.ListTechnicians(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &MonthView{
		Anchor:      first,
		Technician:  technicianID,
		Schedule:    BuildSchedule(rows),
		Clients:     clients,
		Technicians: technicians,
		LoadedAt:    time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != win.generation {
		return nil, ErrStaleLoad
	}
	win.view = view
	return view, nil
}

// Snapshot returns the last successfully loaded view for the month containing
// anchor under the given technician filter, or nil if that window was never
// loaded.
func (l *Loader) Snapshot(anchor time.Time, technicianID string) *MonthView {
	l.mu.Lock()
	defer l.mu.Unlock()
	if win, ok := l.windows[keyFor(anchor, technicianID)]; ok {
		return win.view
	}
	return nil
}
