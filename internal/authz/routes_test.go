package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

func TestGuardUnauthenticatedWinsOverEverything(t *testing.T) {
	decision := Guard(false, AuthContext{Role: domain.RoleSuperAdmin}, "/api/v1/users", DashboardRules)
	require.Equal(t, DecisionUnauthenticated, decision)
}

func TestGuardClientRoleBlockedEverywhere(t *testing.T) {
	auth := AuthContext{Role: domain.RoleClient, Flags: DefaultFlags()}
	for _, path := range []string{
		"/api/v1/agenda",
		"/api/v1/users",
		"/api/v1/clients/123",
		"/api/v1/some/unlisted/path",
	} {
		require.Equal(t, DecisionClientPortalOnly, Guard(true, auth, path, DashboardRules), path)
	}
}

func TestGuardAdminOnlyPrefix(t *testing.T) {
	tech := AuthContext{
		Role: domain.RoleTechnician,
		// Flags cannot buy entry to an admin-only route.
		Flags: mustTemplate(t, TemplateSenior),
	}
	require.Equal(t, DecisionAdminOnly, Guard(true, tech, "/api/v1/users/42/permissions", DashboardRules))

	admin := AuthContext{Role: domain.RoleAdmin}
	require.Equal(t, DecisionAuthorized, Guard(true, admin, "/api/v1/users/42/permissions", DashboardRules))
}

func TestGuardFlagGatedPrefix(t *testing.T) {
	denied := AuthContext{Role: domain.RoleTechnician, Flags: mustTemplate(t, TemplateExternal)}
	require.Equal(t, DecisionPermissionDenied, Guard(true, denied, "/api/v1/clients", DashboardRules))

	granted := AuthContext{
		Role:  domain.RoleTechnician,
		Flags: domain.FlagSet{domain.FlagEditClients: true},
	}
	require.Equal(t, DecisionAuthorized, Guard(true, granted, "/api/v1/clients", DashboardRules))
}

func TestGuardQuotesCompositeGate(t *testing.T) {
	// Visible with either create-quotes or view-financials.
	financialsOnly := AuthContext{
		Role:  domain.RoleTechnician,
		Flags: domain.FlagSet{domain.FlagViewFinancials: true},
	}
	require.Equal(t, DecisionAuthorized, Guard(true, financialsOnly, "/api/v1/quotes", DashboardRules))

	neither := AuthContext{Role: domain.RoleTechnician, Flags: domain.FlagSet{}}
	require.Equal(t, DecisionPermissionDenied, Guard(true, neither, "/api/v1/quotes", DashboardRules))
}

func TestGuardUnmatchedPathAuthorized(t *testing.T) {
	auth := AuthContext{Role: domain.RoleTechnician, Flags: domain.FlagSet{}}
	require.Equal(t, DecisionAuthorized, Guard(true, auth, "/api/v1/agenda", DashboardRules))
	require.Equal(t, DecisionAuthorized, Guard(true, auth, "/api/v1/notifications", DashboardRules))
}

func TestGuardFirstMatchingRuleWins(t *testing.T) {
	rules := []RouteRule{
		{Prefix: "/x", RequiredFlags: []domain.Flag{domain.FlagViewReports}},
		{Prefix: "/x/y", AdminOnly: true},
	}
	auth := AuthContext{
		Role:  domain.RoleTechnician,
		Flags: domain.FlagSet{domain.FlagViewReports: true},
	}
	// /x/y matches /x first, so the admin-only rule never applies.
	require.Equal(t, DecisionAuthorized, Guard(true, auth, "/x/y", rules))
}

func mustTemplate(t *testing.T, name Template) domain.FlagSet {
	t.Helper()
	flags, ok := TemplateFlags(name)
	require.True(t, ok)
	return flags
}
