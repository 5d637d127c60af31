package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// showFinancials reports whether the caller may see money fields.
func showFinancials(c *fiber.Ctx) bool {
	authCtx, ok := auth.AuthFromCtx(c)
	return ok && authCtx.Can(domain.FlagViewFinancials)
}

// actorID returns the caller's profile id, empty when unauthenticated.
func actorID(c *fiber.Ctx) string {
	if profile := auth.ProfileFromCtx(c); profile != nil {
		return profile.ID
	}
	return ""
}

func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
