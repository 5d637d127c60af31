package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

const (
	// ContextProfileKey holds the authenticated *domain.Profile.
	ContextProfileKey = "auth_profile"
	// ContextAuthKey holds the resolved authz.AuthContext.
	ContextAuthKey = "auth_context"
)

// Middleware authenticates requests and loads the caller's profile.
type Middleware struct {
	tokens   *TokenManager
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

func NewMiddleware(tokens *TokenManager, profiles repository.ProfileRepository, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, profiles: profiles, logger: logger}
}

// Authenticate validates the bearer token and attaches the profile and the
// resolved permission context to the request. Requests without a valid token
// continue unauthenticated so the route guard can decide what to do.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Next()
		}

		claims, err := m.tokens.ParseToken(token)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			return c.Next()
		}

		profile, err := m.profiles.GetByID(c.UserContext(), claims.ProfileID)
		if err != nil || !profile.IsActive {
			return c.Next()
		}

		c.Locals(ContextProfileKey, profile)
		c.Locals(ContextAuthKey, authz.AuthContext{Role: profile.Role, Flags: profile.Permissions})
		return c.Next()
	}
}

// ProfileFromCtx returns the authenticated profile, or nil.
func ProfileFromCtx(c *fiber.Ctx) *domain.Profile {
	profile, _ := c.Locals(ContextProfileKey).(*domain.Profile)
	return profile
}

// AuthFromCtx returns the resolved permission context.
func AuthFromCtx(c *fiber.Ctx) (authz.AuthContext, bool) {
	auth, ok := c.Locals(ContextAuthKey).(authz.AuthContext)
	return auth, ok
}

// RequireAuth rejects unauthenticated requests before handler execution.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ProfileFromCtx(c) == nil {
			return util.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
