package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/authz"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// AuthHandler serves login and password endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("email and password required", nil)
	}

	profile, token, exp, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Profile:   profileResponse(profile),
	}})
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile := auth.ProfileFromCtx(c)
	if profile == nil {
		return util.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// RequestPasswordReset POST /auth/password/reset/request.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return util.NewValidationError("email required", nil)
	}

	token, err := h.service.RequestPasswordReset(c.UserContext(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"token":      token.Token,
		"expires_at": token.ExpiresAt,
	}})
}

// ConfirmPasswordReset POST /auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Token == "" || req.NewPassword == "" {
		return util.NewValidationError("token and new_password required", nil)
	}

	if err := h.service.ConfirmPasswordReset(c.UserContext(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password updated"}})
}

// ChangePassword POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	profile := auth.ProfileFromCtx(c)
	if profile == nil {
		return util.NewUnauthorized("authentication required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return util.NewValidationError("current_password and new_password required", nil)
	}

	if err := h.service.ChangePassword(c.UserContext(), profile.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password updated"}})
}

// profileResponse resolves every flag the way the route guard would, so the
// frontend can mirror server-side decisions without duplicating defaults.
func profileResponse(profile *domain.Profile) dto.ProfileResponse {
	authCtx := authz.AuthContext{Role: profile.Role, Flags: profile.Permissions}
	return dto.NewProfileResponse(profile, func(flag domain.Flag) bool {
		return authCtx.Can(flag)
	})
}
