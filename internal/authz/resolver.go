// Package authz is the single source of truth for "can this user see/do X".
// It resolves a profile's role and stored capability flags against requested
// permissions and decides route access for the dashboard API.
package authz

import "github.com/eletroclima/fieldops-service/internal/domain"

// AuthContext is an immutable snapshot of the caller's authorization inputs.
// It is built once per request from the loaded profile and passed explicitly;
// nothing here reads ambient state.
type AuthContext struct {
	Role  domain.Role
	Flags domain.FlagSet
}

// IsAdmin reports whether the role bypasses flag checks entirely.
func (a AuthContext) IsAdmin() bool {
	return a.Role == domain.RoleAdmin || a.Role == domain.RoleSuperAdmin
}

// Can reports whether any of the requested flags is granted. Admin roles are
// always authorized. For everyone else each flag resolves from the stored set,
// falling back to the restrictive default when absent; the result is the
// logical OR over the requested names. Composite gates like "create quotes OR
// view financials" rely on the OR semantics.
func (a AuthContext) Can(flags ...domain.Flag) bool {
	if a.IsAdmin() {
		return true
	}
	for _, flag := range flags {
		if value, ok := a.Flags.Get(flag); ok {
			if value {
				return true
			}
			continue
		}
		if defaultFor(flag) {
			return true
		}
	}
	return false
}
