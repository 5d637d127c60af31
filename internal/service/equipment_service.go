package service

import (
	"context"
	"strings"
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// EquipmentService manages serviceable units at client sites.
type EquipmentService struct {
	equipments repository.EquipmentRepository
	clients    repository.ClientRepository
}

// EquipmentInput describes equipment creation/update payload.
type EquipmentInput struct {
	ClientID     string
	Name         string
	Kind         domain.EquipmentKind
	SerialNumber string
	Location     string
	InstalledAt  *time.Time
	Notes        string
}

// NewEquipmentService constructs the service.
func NewEquipmentService(equipments repository.EquipmentRepository, clients repository.ClientRepository) *EquipmentService {
	return &EquipmentService{equipments: equipments, clients: clients}
}

// Create registers a unit under a client.
func (s *EquipmentService) Create(ctx context.Context, input EquipmentInput) (*domain.Equipment, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, util.NewValidationError("name is required", nil)
	}
	if !input.Kind.Valid() {
		return nil, util.NewValidationError("kind must be electrical or hvac", map[string]any{"kind": string(input.Kind)})
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	equipment := &domain.Equipment{
		ClientID:     input.ClientID,
		Name:         strings.TrimSpace(input.Name),
		Kind:         input.Kind,
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		Location:     strings.TrimSpace(input.Location),
		InstalledAt:  input.InstalledAt,
		Notes:        strings.TrimSpace(input.Notes),
	}
	if err := s.equipments.Create(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// Update edits a unit.
func (s *EquipmentService) Update(ctx context.Context, id string, input EquipmentInput) (*domain.Equipment, error) {
	equipment, err := s.equipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Kind != "" && !input.Kind.Valid() {
		return nil, util.NewValidationError("kind must be electrical or hvac", map[string]any{"kind": string(input.Kind)})
	}
	equipment.Name = strings.TrimSpace(input.Name)
	if input.Kind != "" {
		equipment.Kind = input.Kind
	}
	equipment.SerialNumber = strings.TrimSpace(input.SerialNumber)
	equipment.Location = strings.TrimSpace(input.Location)
	equipment.InstalledAt = input.InstalledAt
	equipment.Notes = strings.TrimSpace(input.Notes)
	if err := s.equipments.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// Delete removes a unit.
func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	return s.equipments.Delete(ctx, id)
}

// Get fetches a unit.
func (s *EquipmentService) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipments.GetByID(ctx, id)
}

// List returns paginated units.
func (s *EquipmentService) List(ctx context.Context, limit, offset int) ([]domain.Equipment, error) {
	return s.equipments.List(ctx, limit, offset)
}

// ListByClient returns all units at one client site.
func (s *EquipmentService) ListByClient(ctx context.Context, clientID string) ([]domain.Equipment, error) {
	return s.equipments.ListByClient(ctx, clientID)
}
