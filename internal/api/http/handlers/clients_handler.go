package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// ClientsHandler serves the client manager and the registry lookups.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// Create POST /clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	client, err := h.service.Create(c.UserContext(), clientInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// Update PUT /clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	client, err := h.service.Update(c.UserContext(), c.Params("id"), clientInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// Delete DELETE /clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get GET /clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	client, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClientResponse(client)})
}

// List GET /clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	filter := repository.ClientFilter{
		SearchTerm: optionalString(c.Query("search")),
		ActiveOnly: c.QueryBool("active_only"),
		Limit:      limit,
		Offset:     offset,
	}
	clients, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// LookupCompany GET /clients/lookup/cnpj/:document. Always 200; an empty
// object means the registry had nothing, the form just stays blank.
func (h *ClientsHandler) LookupCompany(c *fiber.Ctx) error {
	info := h.service.LookupCompany(c.UserContext(), c.Params("document"))
	return c.JSON(fiber.Map{"data": info})
}

// LookupAddress GET /clients/lookup/cep/:code.
func (h *ClientsHandler) LookupAddress(c *fiber.Ctx) error {
	addr := h.service.LookupAddress(c.UserContext(), c.Params("code"))
	return c.JSON(fiber.Map{"data": addr})
}

func clientInput(req dto.ClientRequest) service.ClientInput {
	return service.ClientInput{
		Name:       req.Name,
		Document:   req.Document,
		Email:      req.Email,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	}
}
