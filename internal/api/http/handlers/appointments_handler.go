package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// AppointmentsHandler serves appointment triage.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// Create POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AppointmentRequestBody
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.service.Create(c.UserContext(), actorID(c), appointmentInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// Update PUT /appointments/:id.
func (h *AppointmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.AppointmentRequestBody
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), appointmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// Decide PUT /appointments/:id/status confirms or cancels.
func (h *AppointmentsHandler) Decide(c *fiber.Ctx) error {
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.service.Decide(c.UserContext(), actorID(c), c.Params("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// Convert POST /appointments/:id/convert.
func (h *AppointmentsHandler) Convert(c *fiber.Ctx) error {
	var req dto.ConvertAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	contractID, err := h.service.Convert(c.UserContext(), actorID(c), c.Params("id"), domain.MaintenanceFrequency(req.Frequency))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"contract_id": contractID}})
}

// Delete DELETE /appointments/:id.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /appointments/:id.
func (h *AppointmentsHandler) Get(c *fiber.Ctx) error {
	appointment, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// List GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	appointments, err := h.service.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		items = append(items, dto.NewAppointmentResponse(&appointments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func appointmentInput(req dto.AppointmentRequestBody) service.AppointmentInput {
	return service.AppointmentInput{
		ClientID:      req.ClientID,
		TechnicianID:  req.TechnicianID,
		Title:         req.Title,
		Description:   req.Description,
		RequestedDate: req.RequestedDate,
		Priority:      domain.Priority(req.Priority),
	}
}
