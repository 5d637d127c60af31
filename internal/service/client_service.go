package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/lookup"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// ClientService manages customer records. Creation enriches blank fields from
// the public registries when a document or postal code is present; lookup
// failures never block the write.
type ClientService struct {
	clients repository.ClientRepository
	cnpj    *lookup.CNPJClient
	cep     *lookup.CEPClient
}

// ClientInput describes client creation/update payload.
type ClientInput struct {
	Name       string
	Document   string
	Email      string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository, cnpj *lookup.CNPJClient, cep *lookup.CEPClient) *ClientService {
	return &ClientService{clients: clients, cnpj: cnpj, cep: cep}
}

// Create registers a client, rejecting duplicate documents.
func (s *ClientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	document := lookup.OnlyDigits(input.Document)
	if strings.TrimSpace(input.Name) == "" && document == "" {
		return nil, util.NewValidationError("name or document is required", nil)
	}
	if document != "" {
		if _, err := s.clients.GetByDocument(ctx, document); err == nil {
			return nil, util.NewConflict("document already registered", map[string]any{"document": document})
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
	}

	client := &domain.Client{
		Name:       strings.TrimSpace(input.Name),
		Document:   document,
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Street:     strings.TrimSpace(input.Street),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		PostalCode: lookup.OnlyDigits(input.PostalCode),
		IsActive:   true,
	}
	s.enrich(ctx, client)

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update edits a client record. No registry enrichment on update, the form
// already shows whatever was stored.
func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.Name = strings.TrimSpace(input.Name)
	client.Document = lookup.OnlyDigits(input.Document)
	client.Email = strings.TrimSpace(input.Email)
	client.Phone = strings.TrimSpace(input.Phone)
	client.Street = strings.TrimSpace(input.Street)
	client.City = strings.TrimSpace(input.City)
	client.State = strings.TrimSpace(input.State)
	client.PostalCode = lookup.OnlyDigits(input.PostalCode)
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

// Get fetches a client.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// List returns clients matching the filter.
func (s *ClientService) List(ctx context.Context, filter repository.ClientFilter) ([]domain.Client, error) {
	return s.clients.List(ctx, filter)
}

// LookupCompany proxies the registry lookup for form prefill.
func (s *ClientService) LookupCompany(ctx context.Context, document string) lookup.CompanyInfo {
	if s.cnpj == nil {
		return lookup.CompanyInfo{}
	}
	return s.cnpj.Lookup(ctx, document)
}

// LookupAddress proxies the postal lookup for form prefill.
func (s *ClientService) LookupAddress(ctx context.Context, cep string) lookup.Address {
	if s.cep == nil {
		return lookup.Address{}
	}
	return s.cep.Lookup(ctx, cep)
}

func (s *ClientService) enrich(ctx context.Context, client *domain.Client) {
	if s.cnpj != nil && client.Document != "" && (client.Name == "" || client.Email == "") {
		info := s.cnpj.Lookup(ctx, client.Document)
		if client.Name == "" {
			client.Name = info.Name
		}
		if client.Email == "" {
			client.Email = info.Email
		}
		if client.Phone == "" {
			client.Phone = info.Phone
		}
		if client.Street == "" {
			client.Street = info.Street
		}
		if client.City == "" {
			client.City = info.City
		}
		if client.State == "" {
			client.State = info.State
		}
		if client.PostalCode == "" {
			client.PostalCode = lookup.OnlyDigits(info.PostalCode)
		}
	}
	if s.cep != nil && client.PostalCode != "" && client.Street == "" {
		addr := s.cep.Lookup(ctx, client.PostalCode)
		client.Street = addr.Street
		if client.City == "" {
			client.City = addr.City
		}
		if client.State == "" {
			client.State = addr.State
		}
	}
}
