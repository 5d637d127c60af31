package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// MaintenanceHandler serves maintenance contracts.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: maintenanceService}
}

// Create POST /maintenance.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	contract, err := h.service.Create(c.UserContext(), actorID(c), maintenanceInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewMaintenanceResponse(contract, showFinancials(c))})
}

// Update PUT /maintenance/:id.
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	contract, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), maintenanceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMaintenanceResponse(contract, showFinancials(c))})
}

// SetStatus PUT /maintenance/:id/status.
func (h *MaintenanceHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	contract, err := h.service.SetStatus(c.UserContext(), actorID(c), c.Params("id"), domain.MaintenanceStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMaintenanceResponse(contract, showFinancials(c))})
}

// CompleteVisit POST /maintenance/:id/complete.
func (h *MaintenanceHandler) CompleteVisit(c *fiber.Ctx) error {
	contract, err := h.service.CompleteVisit(c.UserContext(), actorID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMaintenanceResponse(contract, showFinancials(c))})
}

// Delete DELETE /maintenance/:id.
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /maintenance/:id.
func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	contract, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMaintenanceResponse(contract, showFinancials(c))})
}

// List GET /maintenance. due_within_days switches to the due list.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	if days := c.QueryInt("due_within_days"); days > 0 {
		contracts, err := h.service.DueBy(c.UserContext(), time.Now().AddDate(0, 0, days))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": maintenanceResponses(c, contracts)})
	}

	limit, offset := parsePagination(c)
	contracts, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": maintenanceResponses(c, contracts)})
}

func maintenanceResponses(c *fiber.Ctx, contracts []domain.MaintenanceContract) []dto.MaintenanceResponse {
	financials := showFinancials(c)
	items := make([]dto.MaintenanceResponse, 0, len(contracts))
	for i := range contracts {
		items = append(items, dto.NewMaintenanceResponse(&contracts[i], financials))
	}
	return items
}

func maintenanceInput(req dto.MaintenanceRequest) service.MaintenanceInput {
	return service.MaintenanceInput{
		ClientID:     req.ClientID,
		EquipmentID:  req.EquipmentID,
		TechnicianID: req.TechnicianID,
		Title:        req.Title,
		Frequency:    domain.MaintenanceFrequency(req.Frequency),
		StartDate:    req.StartDate,
		MonthlyCents: req.MonthlyCents,
	}
}
