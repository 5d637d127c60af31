package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// ProfileService manages dashboard accounts and their permission flags.
// Every operation here sits behind the admin-only route rule.
type ProfileService struct {
	profiles   repository.ProfileRepository
	bcryptCost int
}

// ProfileCreateInput describes account creation payload.
type ProfileCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	ClientID *string
	Template authz.Template
}

// ProfileUpdateInput describes mutable account fields.
type ProfileUpdateInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository, bcryptCost int) *ProfileService {
	return &ProfileService{profiles: profiles, bcryptCost: bcryptCost}
}

// Create registers a new account. Technician accounts start from a named
// permission template, defaulting to the most restrictive one.
func (s *ProfileService) Create(ctx context.Context, input ProfileCreateInput) (*domain.Profile, error) {
	if !input.Role.Valid() {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": string(input.Role)})
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, util.NewValidationError("name and email are required", nil)
	}
	if input.Role == domain.RoleClient && input.ClientID == nil {
		return nil, util.NewValidationError("client accounts require a client_id", nil)
	}

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	flags, ok := authz.TemplateFlags(input.Template)
	if !ok {
		if input.Template != "" {
			return nil, util.NewValidationError("unknown permission template", map[string]any{"template": string(input.Template)})
		}
		flags = authz.DefaultFlags()
	}

	profile := &domain.Profile{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Permissions:  flags,
		ClientID:     input.ClientID,
		IsActive:     true,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update edits name, email and role.
func (s *ProfileService) Update(ctx context.Context, id string, input ProfileUpdateInput) (*domain.Profile, error) {
	if !input.Role.Valid() {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": string(input.Role)})
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Name = strings.TrimSpace(input.Name)
	profile.Email = strings.ToLower(strings.TrimSpace(input.Email))
	profile.Role = input.Role
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetPermissions replaces the stored flag set. Unknown flag names reject the
// whole request so a typo cannot silently widen access through defaults.
func (s *ProfileService) SetPermissions(ctx context.Context, id string, flags domain.FlagSet) (*domain.Profile, error) {
	for flag := range flags {
		if !flag.Valid() {
			return nil, util.NewValidationError("unknown permission flag", map[string]any{"flag": string(flag)})
		}
	}
	if err := s.profiles.UpdatePermissions(ctx, id, flags); err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, id)
}

// ApplyTemplate overwrites the flag set with a named template.
func (s *ProfileService) ApplyTemplate(ctx context.Context, id string, template authz.Template) (*domain.Profile, error) {
	flags, ok := authz.TemplateFlags(template)
	if !ok {
		return nil, util.NewValidationError("unknown permission template", map[string]any{"template": string(template)})
	}
	if err := s.profiles.UpdatePermissions(ctx, id, flags); err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, id)
}

// SetActive enables or disables an account without deleting it.
func (s *ProfileService) SetActive(ctx context.Context, id string, active bool) error {
	return s.profiles.SetActive(ctx, id, active)
}

// Delete removes an account permanently.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

// Get fetches one account.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// List returns paginated accounts.
func (s *ProfileService) List(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	return s.profiles.List(ctx, limit, offset)
}

// ListTechnicians returns active technician accounts for assignment pickers.
func (s *ProfileService) ListTechnicians(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListTechnicians(ctx)
}
