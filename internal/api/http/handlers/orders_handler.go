package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// OrdersHandler serves the service order board.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// Create POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.Create(c.UserContext(), actorID(c), orderInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(order, showFinancials(c))})
}

// Update PUT /orders/:id.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), orderInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order, showFinancials(c))})
}

// ChangeStatus PUT /orders/:id/status.
func (h *OrdersHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	order, err := h.service.ChangeStatus(c.UserContext(), actorID(c), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order, showFinancials(c))})
}

// Delete DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order, showFinancials(c))})
}

// List GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	filter := repository.OrderFilter{
		ClientID:     optionalString(c.Query("client_id")),
		TechnicianID: optionalString(c.Query("technician_id")),
		SearchTerm:   optionalString(c.Query("search")),
		Limit:        limit,
		Offset:       offset,
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !status.Valid() {
			return util.NewValidationError("unknown order status", map[string]any{"status": raw})
		}
		filter.Statuses = []domain.OrderStatus{status}
	}
	if raw := c.Query("scheduled_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return util.NewValidationError("scheduled_from must be RFC3339", nil)
		}
		filter.ScheduledFrom = &from
	}
	if raw := c.Query("scheduled_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return util.NewValidationError("scheduled_to must be RFC3339", nil)
		}
		filter.ScheduledTo = &to
	}

	orders, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	financials := showFinancials(c)
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderResponse(&orders[i], financials))
	}
	return c.JSON(fiber.Map{"data": items})
}

func orderInput(req dto.OrderRequest) service.OrderInput {
	return service.OrderInput{
		ClientID:      req.ClientID,
		EquipmentID:   req.EquipmentID,
		TechnicianID:  req.TechnicianID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      domain.Priority(req.Priority),
		ScheduledDate: req.ScheduledDate,
		TotalCents:    req.TotalCents,
	}
}
