package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

func TestProfileCreateDefaultsToRestrictiveFlags(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), 4)

	profile, err := svc.Create(context.Background(), ProfileCreateInput{
		Name:     "Ana Souza",
		Email:    "Ana.Souza@Example.com",
		Password: "s3cret",
		Role:     domain.RoleTechnician,
	})
	require.NoError(t, err)
	require.Equal(t, "ana.souza@example.com", profile.Email)
	require.True(t, profile.IsActive)
	require.Equal(t, authz.DefaultFlags(), profile.Permissions)
	require.False(t, profile.Permissions[domain.FlagViewFinancials])
	require.True(t, profile.Permissions[domain.FlagCreateOrders])
}

func TestProfileCreateWithSeniorTemplate(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), 4)

	profile, err := svc.Create(context.Background(), ProfileCreateInput{
		Name:     "Bruno Lima",
		Email:    "bruno@example.com",
		Password: "s3cret",
		Role:     domain.RoleTechnician,
		Template: authz.TemplateSenior,
	})
	require.NoError(t, err)
	require.True(t, profile.Permissions[domain.FlagViewAllOrders])
	// no template grants financial visibility; that is always explicit
	require.False(t, profile.Permissions[domain.FlagViewFinancials])
}

func TestProfileCreateValidation(t *testing.T) {
	svc := NewProfileService(newStubProfileRepo(), 4)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProfileCreateInput{Name: "x", Email: "x@example.com", Role: "manager"})
	requireCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Create(ctx, ProfileCreateInput{Name: "x", Email: "x@example.com", Role: domain.RoleClient})
	requireCode(t, err, "VALIDATION_FAILED")

	_, err = svc.Create(ctx, ProfileCreateInput{Name: "x", Email: "x@example.com", Role: domain.RoleTechnician, Template: "intern"})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestProfileCreateDuplicateEmail(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, 4)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProfileCreateInput{Name: "a", Email: "dup@example.com", Role: domain.RoleTechnician})
	require.NoError(t, err)

	_, err = svc.Create(ctx, ProfileCreateInput{Name: "b", Email: "DUP@example.com", Role: domain.RoleTechnician})
	requireCode(t, err, "CONFLICT")
}

func TestSetPermissionsRejectsUnknownFlag(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, 4)
	ctx := context.Background()

	profile, err := svc.Create(ctx, ProfileCreateInput{Name: "a", Email: "a@example.com", Role: domain.RoleTechnician})
	require.NoError(t, err)

	_, err = svc.SetPermissions(ctx, profile.ID, domain.FlagSet{"can_fly": true})
	requireCode(t, err, "VALIDATION_FAILED")

	updated, err := svc.SetPermissions(ctx, profile.ID, domain.FlagSet{domain.FlagViewFinancials: true})
	require.NoError(t, err)
	require.True(t, updated.Permissions[domain.FlagViewFinancials])
}

func TestApplyTemplateOverwritesFlags(t *testing.T) {
	repo := newStubProfileRepo()
	svc := NewProfileService(repo, 4)
	ctx := context.Background()

	profile, err := svc.Create(ctx, ProfileCreateInput{Name: "a", Email: "a@example.com", Role: domain.RoleTechnician, Template: authz.TemplateSenior})
	require.NoError(t, err)

	updated, err := svc.ApplyTemplate(ctx, profile.ID, authz.TemplateExternal)
	require.NoError(t, err)
	require.False(t, updated.Permissions[domain.FlagViewAllOrders])

	_, err = svc.ApplyTemplate(ctx, profile.ID, "chief")
	requireCode(t, err, "VALIDATION_FAILED")
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr := util.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
}
