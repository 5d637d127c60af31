package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
)

// SearchResult aggregates matches across record types for the command
// palette. Each list is independently capped.
type SearchResult struct {
	Clients []domain.Client       `json:"clients"`
	Orders  []domain.ServiceOrder `json:"orders"`
	Tickets []domain.Ticket       `json:"tickets"`
}

// SearchService runs the cross-type lookup behind the dashboard's quick
// search.
type SearchService struct {
	clients repository.ClientRepository
	orders  repository.OrderRepository
	tickets repository.TicketRepository
	limit   int
}

// NewSearchService constructs the service.
func NewSearchService(clients repository.ClientRepository, orders repository.OrderRepository, tickets repository.TicketRepository, limit int) *SearchService {
	if limit <= 0 {
		limit = 5
	}
	return &SearchService{clients: clients, orders: orders, tickets: tickets, limit: limit}
}

// Search fans out over the three record types concurrently. A blank term
// yields an empty result without touching the database.
func (s *SearchService) Search(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	result := &SearchResult{}
	if term == "" {
		return result, nil
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		clients, err := s.clients.List(ctx, repository.ClientFilter{SearchTerm: &term, Limit: s.limit})
		if err != nil {
			return err
		}
		result.Clients = clients
		return nil
	})
	group.Go(func() error {
		orders, err := s.orders.List(ctx, repository.OrderFilter{SearchTerm: &term, Limit: s.limit})
		if err != nil {
			return err
		}
		result.Orders = orders
		return nil
	})
	group.Go(func() error {
		tickets, err := s.tickets.List(ctx, repository.TicketFilter{SearchTerm: &term, Limit: s.limit})
		if err != nil {
			return err
		}
		result.Tickets = tickets
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
