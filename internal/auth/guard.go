package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/observability"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// Guard enforces the dashboard route rules on every request under the
// protected group. Rules are matched by path prefix, first match wins.
func Guard(rules []authz.RouteRule, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, authenticated := AuthFromCtx(c)

		decision := authz.Guard(authenticated, authCtx, c.Path(), rules)
		if decision != authz.DecisionAuthorized && metrics != nil {
			metrics.RecordGuardDenial(decision.String())
		}

		switch decision {
		case authz.DecisionAuthorized:
			return c.Next()
		case authz.DecisionUnauthenticated:
			return util.NewUnauthorized("authentication required")
		case authz.DecisionClientPortalOnly:
			return util.NewClientPortalOnly()
		case authz.DecisionAdminOnly:
			return util.NewAdminOnly()
		case authz.DecisionPermissionDenied:
			rule, _ := authz.MatchRule(c.Path(), rules)
			flags := make([]string, 0, len(rule.RequiredFlags))
			for _, flag := range rule.RequiredFlags {
				flags = append(flags, string(flag))
			}
			return util.NewPermissionRequired(flags)
		default:
			return util.NewForbidden("access denied")
		}
	}
}
