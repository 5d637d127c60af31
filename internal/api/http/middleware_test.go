package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/domain"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// newGuardedApp wires the real middleware chain around the route guard. The
// fake authenticator stands in for token validation so each case can choose
// its principal.
func newGuardedApp(role domain.Role, flags domain.FlagSet, authenticated bool) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, time.Second)
	app.Use(func(c *fiber.Ctx) error {
		if authenticated {
			c.Locals(auth.ContextAuthKey, authz.AuthContext{Role: role, Flags: flags})
		}
		return c.Next()
	})
	api := app.Group("/api/v1", auth.Guard(authz.DashboardRules, nil))
	api.Get("/*", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, errorEnvelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	var envelope errorEnvelope
	if resp.StatusCode >= 400 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}
	return resp, envelope
}

func TestGuardUnauthenticated(t *testing.T) {
	app := newGuardedApp("", nil, false)

	resp, envelope := doRequest(t, app, "/api/v1/orders")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
}

func TestGuardClientPortalOnly(t *testing.T) {
	// a client account is blocked everywhere, even on paths it would
	// otherwise have flags for
	app := newGuardedApp(domain.RoleClient, domain.FlagSet{domain.FlagViewEquipments: true}, true)

	resp, envelope := doRequest(t, app, "/api/v1/equipments")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "CLIENT_PORTAL_ONLY", envelope.Error.Code)
}

func TestGuardAdminOnlyPrefix(t *testing.T) {
	app := newGuardedApp(domain.RoleTechnician, nil, true)

	resp, envelope := doRequest(t, app, "/api/v1/users")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "ADMIN_ONLY", envelope.Error.Code)

	resp, _ = doRequest(t, newGuardedApp(domain.RoleAdmin, nil, true), "/api/v1/users")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardPermissionDenied(t *testing.T) {
	// technician with no stored flags: client mutations default to false
	app := newGuardedApp(domain.RoleTechnician, nil, true)

	resp, envelope := doRequest(t, app, "/api/v1/clients")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "PERMISSION_REQUIRED", envelope.Error.Code)
	require.Contains(t, envelope.Error.Details, "any_of")
}

func TestGuardAnyFlagSatisfies(t *testing.T) {
	app := newGuardedApp(domain.RoleTechnician, domain.FlagSet{domain.FlagCreateQuotes: true}, true)

	resp, _ := doRequest(t, app, "/api/v1/quotes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardDefaultGrants(t *testing.T) {
	// view_equipments and view_maintenance default to granted
	app := newGuardedApp(domain.RoleTechnician, nil, true)

	resp, _ := doRequest(t, app, "/api/v1/equipments")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "/api/v1/maintenance")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGuardUnmatchedPrefixAuthorized(t *testing.T) {
	app := newGuardedApp(domain.RoleTechnician, nil, true)

	resp, _ := doRequest(t, app, "/api/v1/agenda")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorEnvelopeOnPanic(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, time.Second)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, envelope := doRequest(t, app, "/boom")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}
