package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// InstallationsHandler serves installation projects.
type InstallationsHandler struct {
	service *service.InstallationService
}

// NewInstallationsHandler constructs handler.
func NewInstallationsHandler(installationService *service.InstallationService) *InstallationsHandler {
	return &InstallationsHandler{service: installationService}
}

// Create POST /installations.
func (h *InstallationsHandler) Create(c *fiber.Ctx) error {
	var req dto.InstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	installation, err := h.service.Create(c.UserContext(), actorID(c), installationInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Update PUT /installations/:id.
func (h *InstallationsHandler) Update(c *fiber.Ctx) error {
	var req dto.InstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	installation, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), installationInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// ChangeStatus PUT /installations/:id/status.
func (h *InstallationsHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	installation, err := h.service.ChangeStatus(c.UserContext(), actorID(c), c.Params("id"), domain.InstallationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Delete DELETE /installations/:id.
func (h *InstallationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /installations/:id.
func (h *InstallationsHandler) Get(c *fiber.Ctx) error {
	installation, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// List GET /installations.
func (h *InstallationsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	installations, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.InstallationResponse, 0, len(installations))
	for i := range installations {
		items = append(items, dto.NewInstallationResponse(&installations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func installationInput(req dto.InstallationRequest) service.InstallationInput {
	return service.InstallationInput{
		ClientID:     req.ClientID,
		TechnicianID: req.TechnicianID,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
	}
}
