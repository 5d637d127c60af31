package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
)

type stubProfileRepo struct {
	profiles map[string]*domain.Profile
	nextID   int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	r.nextID++
	profile.ID = fmt.Sprintf("profile-%d", r.nextID)
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *stubProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *stubProfileRepo) UpdatePermissions(_ context.Context, id string, flags domain.FlagSet) error {
	profile, ok := r.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.Permissions = flags.Clone()
	return nil
}

func (r *stubProfileRepo) SetActive(_ context.Context, id string, active bool) error {
	profile, ok := r.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.IsActive = active
	return nil
}

func (r *stubProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.profiles, id)
	return nil
}

func (r *stubProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *stubProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubProfileRepo) List(_ context.Context, _, _ int) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		out = append(out, *profile)
	}
	return out, nil
}

func (r *stubProfileRepo) ListTechnicians(_ context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, profile := range r.profiles {
		if profile.Role == domain.RoleTechnician && profile.IsActive {
			out = append(out, *profile)
		}
	}
	return out, nil
}

type stubClientRepo struct {
	clients map[string]*domain.Client
}

func newStubClientRepo(ids ...string) *stubClientRepo {
	repo := &stubClientRepo{clients: make(map[string]*domain.Client)}
	for _, id := range ids {
		repo.clients[id] = &domain.Client{ID: id, Name: "client " + id, IsActive: true}
	}
	return repo
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return client, nil
}

func (r *stubClientRepo) GetByDocument(_ context.Context, document string) (*domain.Client, error) {
	for _, client := range r.clients {
		if client.Document == document {
			return client, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubClientRepo) List(_ context.Context, _ repository.ClientFilter) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		out = append(out, *client)
	}
	return out, nil
}

func (r *stubClientRepo) ListActive(_ context.Context) ([]domain.Client, error) {
	return r.List(context.Background(), repository.ClientFilter{})
}

type stubQuoteRepo struct {
	quotes map[string]*domain.Quote
}

func newStubQuoteRepo(quotes ...*domain.Quote) *stubQuoteRepo {
	repo := &stubQuoteRepo{quotes: make(map[string]*domain.Quote)}
	for _, quote := range quotes {
		copied := *quote
		repo.quotes[quote.ID] = &copied
	}
	return repo
}

func (r *stubQuoteRepo) Create(_ context.Context, quote *domain.Quote) error {
	quote.ID = fmt.Sprintf("quote-%d", len(r.quotes)+1)
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *stubQuoteRepo) Update(_ context.Context, quote *domain.Quote) error {
	if _, ok := r.quotes[quote.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *quote
	r.quotes[quote.ID] = &copied
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id string) error {
	delete(r.quotes, id)
	return nil
}

func (r *stubQuoteRepo) GetByID(_ context.Context, id string) (*domain.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *quote
	return &copied, nil
}

func (r *stubQuoteRepo) List(_ context.Context, _, _ int) ([]domain.Quote, error) {
	out := make([]domain.Quote, 0, len(r.quotes))
	for _, quote := range r.quotes {
		out = append(out, *quote)
	}
	return out, nil
}

func (r *stubQuoteRepo) ListByClient(_ context.Context, clientID string) ([]domain.Quote, error) {
	var out []domain.Quote
	for _, quote := range r.quotes {
		if quote.ClientID == clientID {
			out = append(out, *quote)
		}
	}
	return out, nil
}

type stubOvertimeRepo struct {
	entries map[string]*domain.OvertimeEntry
}

func newStubOvertimeRepo(entries ...*domain.OvertimeEntry) *stubOvertimeRepo {
	repo := &stubOvertimeRepo{entries: make(map[string]*domain.OvertimeEntry)}
	for _, entry := range entries {
		copied := *entry
		repo.entries[entry.ID] = &copied
	}
	return repo
}

func (r *stubOvertimeRepo) Create(_ context.Context, entry *domain.OvertimeEntry) error {
	entry.ID = fmt.Sprintf("overtime-%d", len(r.entries)+1)
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *stubOvertimeRepo) Review(_ context.Context, id string, status domain.OvertimeStatus, reviewerID string) error {
	entry, ok := r.entries[id]
	if !ok {
		return pgx.ErrNoRows
	}
	entry.Status = status
	entry.ReviewedBy = &reviewerID
	return nil
}

func (r *stubOvertimeRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *stubOvertimeRepo) GetByID(_ context.Context, id string) (*domain.OvertimeEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *entry
	return &copied, nil
}

func (r *stubOvertimeRepo) ListByTechnician(_ context.Context, technicianID string, _, _ time.Time) ([]domain.OvertimeEntry, error) {
	var out []domain.OvertimeEntry
	for _, entry := range r.entries {
		if entry.TechnicianID == technicianID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *stubOvertimeRepo) ListPending(_ context.Context) ([]domain.OvertimeEntry, error) {
	var out []domain.OvertimeEntry
	for _, entry := range r.entries {
		if entry.Status == domain.OvertimeStatusPending {
			out = append(out, *entry)
		}
	}
	return out, nil
}

type stubAgendaRepo struct {
	rows     []agenda.Row
	fetchErr error
	deleted  []string
}

func (r *stubAgendaRepo) FetchRange(_ context.Context, _, _ time.Time, _ string) ([]agenda.Row, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return r.rows, nil
}

func (r *stubAgendaRepo) DeleteEvent(_ context.Context, eventType agenda.EventType, id string) error {
	r.deleted = append(r.deleted, string(eventType)+"/"+id)
	return nil
}
