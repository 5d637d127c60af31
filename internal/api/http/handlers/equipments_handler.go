package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// EquipmentsHandler serves the equipment registry.
type EquipmentsHandler struct {
	service *service.EquipmentService
}

// NewEquipmentsHandler constructs handler.
func NewEquipmentsHandler(equipmentService *service.EquipmentService) *EquipmentsHandler {
	return &EquipmentsHandler{service: equipmentService}
}

// Create POST /equipments.
func (h *EquipmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	equipment, err := h.service.Create(c.UserContext(), equipmentInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEquipmentResponse(equipment)})
}

// Update PUT /equipments/:id.
func (h *EquipmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.EquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	equipment, err := h.service.Update(c.UserContext(), c.Params("id"), equipmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEquipmentResponse(equipment)})
}

// Delete DELETE /equipments/:id.
func (h *EquipmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /equipments/:id.
func (h *EquipmentsHandler) Get(c *fiber.Ctx) error {
	equipment, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEquipmentResponse(equipment)})
}

// List GET /equipments. client_id narrows to one site.
func (h *EquipmentsHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		equipments, err := h.service.ListByClient(c.UserContext(), clientID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": equipmentResponses(equipments)})
	}

	limit, offset := parsePagination(c)
	equipments, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": equipmentResponses(equipments)})
}

func equipmentResponses(equipments []domain.Equipment) []dto.EquipmentResponse {
	items := make([]dto.EquipmentResponse, 0, len(equipments))
	for i := range equipments {
		items = append(items, dto.NewEquipmentResponse(&equipments[i]))
	}
	return items
}

func equipmentInput(req dto.EquipmentRequest) service.EquipmentInput {
	return service.EquipmentInput{
		ClientID:     req.ClientID,
		Name:         req.Name,
		Kind:         domain.EquipmentKind(req.Kind),
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		InstalledAt:  req.InstalledAt,
		Notes:        req.Notes,
	}
}
