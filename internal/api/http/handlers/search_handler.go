package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/service"
)

// SearchHandler backs the dashboard quick-search box.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{service: searchService}
}

// Search GET /search?q=<term> fans out over clients, orders and tickets.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	result, err := h.service.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}

	financials := showFinancials(c)
	resp := dto.SearchResponse{
		Clients: make([]dto.ClientResponse, 0, len(result.Clients)),
		Orders:  make([]dto.OrderResponse, 0, len(result.Orders)),
		Tickets: make([]dto.TicketResponse, 0, len(result.Tickets)),
	}
	for i := range result.Clients {
		resp.Clients = append(resp.Clients, dto.NewClientResponse(&result.Clients[i]))
	}
	for i := range result.Orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(&result.Orders[i], financials))
	}
	for i := range result.Tickets {
		resp.Tickets = append(resp.Tickets, dto.NewTicketResponse(&result.Tickets[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}
