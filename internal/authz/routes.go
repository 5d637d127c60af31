package authz

import (
	"strings"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// Decision is the terminal outcome of guarding one request.
type Decision int

const (
	// DecisionAuthorized lets the request through to the handler.
	DecisionAuthorized Decision = iota
	// DecisionUnauthenticated means no valid principal was presented.
	DecisionUnauthenticated
	// DecisionClientPortalOnly blocks client-role accounts from the
	// entire dashboard regardless of path or flags.
	DecisionClientPortalOnly
	// DecisionAdminOnly blocks non-admin roles from admin-only prefixes.
	DecisionAdminOnly
	// DecisionPermissionDenied means every required flag resolved false.
	DecisionPermissionDenied
)

func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionClientPortalOnly:
		return "client_portal_only"
	case DecisionAdminOnly:
		return "admin_only"
	case DecisionPermissionDenied:
		return "permission_denied"
	}
	return "unknown"
}

// RouteRule maps a path prefix to its access requirement. AdminOnly rules
// ignore RequiredFlags; flag rules are satisfied when ANY listed flag is
// granted.
type RouteRule struct {
	Prefix        string
	AdminOnly     bool
	RequiredFlags []domain.Flag
}

// DashboardRules is the ordered rule table for the protected API surface.
// Matching is prefix-based and first match wins; a path matching no rule is
// authorized for any authenticated non-client principal.
var DashboardRules = []RouteRule{
	{Prefix: "/api/v1/users", AdminOnly: true},
	{Prefix: "/api/v1/clients", RequiredFlags: []domain.Flag{
		domain.FlagCreateClients, domain.FlagEditClients, domain.FlagDeleteClients,
	}},
	{Prefix: "/api/v1/equipments", RequiredFlags: []domain.Flag{
		domain.FlagViewEquipments, domain.FlagEditEquipments,
	}},
	{Prefix: "/api/v1/quotes", RequiredFlags: []domain.Flag{
		domain.FlagCreateQuotes, domain.FlagViewFinancials,
	}},
	{Prefix: "/api/v1/maintenance", RequiredFlags: []domain.Flag{
		domain.FlagViewMaintenance, domain.FlagManageMaintenance,
	}},
	{Prefix: "/api/v1/inventory", RequiredFlags: []domain.Flag{
		domain.FlagViewInventory, domain.FlagManageInventory,
	}},
}

// Guard evaluates route access with fixed precedence:
// Unauthenticated > ClientPortalOnly > AdminOnly > PermissionDenied >
// Authorized. The auth context argument is ignored unless authenticated.
func Guard(authenticated bool, auth AuthContext, path string, rules []RouteRule) Decision {
	if !authenticated {
		return DecisionUnauthenticated
	}
	if auth.Role == domain.RoleClient {
		return DecisionClientPortalOnly
	}
	for _, rule := range rules {
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		if rule.AdminOnly {
			if auth.IsAdmin() {
				return DecisionAuthorized
			}
			return DecisionAdminOnly
		}
		if auth.Can(rule.RequiredFlags...) {
			return DecisionAuthorized
		}
		return DecisionPermissionDenied
	}
	return DecisionAuthorized
}

// MatchRule returns the first rule whose prefix matches the path.
func MatchRule(path string, rules []RouteRule) (RouteRule, bool) {
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return RouteRule{}, false
}
