package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// QuotesHandler serves quotes.
type QuotesHandler struct {
	service *service.QuoteService
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(quoteService *service.QuoteService) *QuotesHandler {
	return &QuotesHandler{service: quoteService}
}

// Create POST /quotes.
func (h *QuotesHandler) Create(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	quote, err := h.service.Create(c.UserContext(), actorID(c), quoteInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewQuoteResponse(quote, showFinancials(c))})
}

// Update PUT /quotes/:id.
func (h *QuotesHandler) Update(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	quote, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), quoteInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewQuoteResponse(quote, showFinancials(c))})
}

// ChangeStatus PUT /quotes/:id/status.
func (h *QuotesHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	quote, err := h.service.ChangeStatus(c.UserContext(), actorID(c), c.Params("id"), domain.QuoteStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewQuoteResponse(quote, showFinancials(c))})
}

// Delete DELETE /quotes/:id.
func (h *QuotesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /quotes/:id.
func (h *QuotesHandler) Get(c *fiber.Ctx) error {
	quote, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewQuoteResponse(quote, showFinancials(c))})
}

// List GET /quotes. client_id narrows to one client.
func (h *QuotesHandler) List(c *fiber.Ctx) error {
	var (
		quotes []domain.Quote
		err    error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		quotes, err = h.service.ListByClient(c.UserContext(), clientID)
	} else {
		limit, offset := parsePagination(c)
		quotes, err = h.service.List(c.UserContext(), limit, offset)
	}
	if err != nil {
		return err
	}

	financials := showFinancials(c)
	items := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, dto.NewQuoteResponse(&quotes[i], financials))
	}
	return c.JSON(fiber.Map{"data": items})
}

func quoteInput(req dto.QuoteRequest) service.QuoteInput {
	return service.QuoteInput{
		ClientID:     req.ClientID,
		TechnicianID: req.TechnicianID,
		Title:        req.Title,
		Description:  req.Description,
		TotalCents:   req.TotalCents,
		ValidUntil:   req.ValidUntil,
	}
}
