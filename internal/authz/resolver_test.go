package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

func TestAdminRolesAlwaysAuthorized(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin} {
		auth := AuthContext{Role: role}
		for _, flag := range domain.AllFlags {
			require.True(t, auth.Can(flag), "role %s flag %s", role, flag)
		}
		require.True(t, auth.IsAdmin())
	}
}

func TestTechnicianDenyByDefault(t *testing.T) {
	auth := AuthContext{Role: domain.RoleTechnician}

	require.False(t, auth.Can(domain.FlagViewAllOrders))
	require.False(t, auth.Can(domain.FlagCreateClients))
	require.False(t, auth.Can(domain.FlagViewFinancials))
	require.False(t, auth.IsAdmin())
}

func TestMissingFlagFallsBackToRestrictiveDefault(t *testing.T) {
	// Stored set covers a single flag; everything else resolves from the
	// default table, which mirrors the junior template.
	auth := AuthContext{
		Role:  domain.RoleTechnician,
		Flags: domain.FlagSet{domain.FlagViewFinancials: true},
	}

	require.True(t, auth.Can(domain.FlagViewFinancials))
	require.True(t, auth.Can(domain.FlagCreateOrders))
	require.False(t, auth.Can(domain.FlagEditAllOrders))
}

func TestStoredFalseOverridesPermissiveDefault(t *testing.T) {
	auth := AuthContext{
		Role:  domain.RoleTechnician,
		Flags: domain.FlagSet{domain.FlagCreateOrders: false},
	}
	require.False(t, auth.Can(domain.FlagCreateOrders))
}

func TestJuniorTemplate(t *testing.T) {
	flags, ok := TemplateFlags(TemplateJunior)
	require.True(t, ok)
	auth := AuthContext{Role: domain.RoleTechnician, Flags: flags}

	require.True(t, auth.Can(domain.FlagCreateOrders))
	require.False(t, auth.Can(domain.FlagDeleteOwnOrders))
}

func TestSeniorTemplate(t *testing.T) {
	flags, ok := TemplateFlags(TemplateSenior)
	require.True(t, ok)
	auth := AuthContext{Role: domain.RoleTechnician, Flags: flags}

	require.True(t, auth.Can(domain.FlagEditAllOrders))
	// Even senior technicians never see financials.
	require.False(t, auth.Can(domain.FlagViewFinancials))
}

func TestCanOrSemantics(t *testing.T) {
	cases := []struct {
		name       string
		quotes     bool
		financials bool
		want       bool
	}{
		{"both false", false, false, false},
		{"quotes only", true, false, true},
		{"financials only", false, true, true},
		{"both true", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := AuthContext{
				Role: domain.RoleTechnician,
				Flags: domain.FlagSet{
					domain.FlagCreateQuotes:   tc.quotes,
					domain.FlagViewFinancials: tc.financials,
				},
			}
			got := auth.Can(domain.FlagCreateQuotes, domain.FlagViewFinancials)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTemplatesCoverEveryFlag(t *testing.T) {
	for _, name := range []Template{TemplateJunior, TemplateSenior, TemplateExternal} {
		flags, ok := TemplateFlags(name)
		require.True(t, ok)
		require.Len(t, flags, len(domain.AllFlags), "template %s", name)
		for _, flag := range domain.AllFlags {
			_, present := flags.Get(flag)
			require.True(t, present, "template %s missing %s", name, flag)
		}
	}
}

func TestUnknownTemplate(t *testing.T) {
	_, ok := TemplateFlags(Template("principal"))
	require.False(t, ok)
}
