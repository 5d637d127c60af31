package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// AgendaHandler serves the unified calendar.
type AgendaHandler struct {
	service       *service.AgendaService
	upcomingLimit int
}

// NewAgendaHandler constructs handler.
func NewAgendaHandler(agendaService *service.AgendaService, upcomingLimit int) *AgendaHandler {
	return &AgendaHandler{service: agendaService, upcomingLimit: upcomingLimit}
}

// agendaWindow resolves the month/technician query pair every agenda route
// accepts. The month defaults to the current one, the technician to "all".
func agendaWindow(c *fiber.Ctx) (time.Time, string, error) {
	anchor := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return time.Time{}, "", util.NewValidationError("month must look like 2025-07", map[string]any{"month": raw})
		}
		anchor = parsed
	}
	return anchor, c.Query("technician", agenda.TechnicianFilterAll), nil
}

// Month GET /agenda?month=2025-07&technician=<id|all> loads one month.
func (h *AgendaHandler) Month(c *fiber.Ctx) error {
	anchor, technician, err := agendaWindow(c)
	if err != nil {
		return err
	}

	view, err := h.service.LoadMonth(c.UserContext(), anchor, technician)
	if err != nil {
		if view == nil {
			return err
		}
		// stale-but-visible: surface the last good view alongside a 200
		// so the calendar never blanks out on a transient failure.
		return c.JSON(fiber.Map{
			"data":  h.monthResponse(view),
			"stale": true,
		})
	}
	return c.JSON(fiber.Map{"data": h.monthResponse(view)})
}

// Day GET /agenda/day?date=2025-07-14&type=<all|order|...> lists one day in
// fixed group order.
func (h *AgendaHandler) Day(c *fiber.Ctx) error {
	day := c.Query("date")
	if _, err := time.Parse(agenda.DateLayout, day); err != nil {
		return util.NewValidationError("date must look like 2025-07-14", map[string]any{"date": day})
	}
	typeFilter := c.Query("type", agenda.TypeFilterAll)
	if typeFilter != agenda.TypeFilterAll {
		if _, err := agenda.ParseEventType(typeFilter); err != nil {
			return util.NewValidationError("unknown event type", map[string]any{"type": typeFilter})
		}
	}

	// The requested date pins the window, so two users browsing different
	// months or technician filters each get their own view.
	anchor, _ := time.Parse(agenda.DateLayout, day)
	technician := c.Query("technician", agenda.TechnicianFilterAll)
	view, err := h.windowView(c, anchor, technician)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view.Schedule.EventsForDay(day, typeFilter)})
}

// Upcoming GET /agenda/upcoming returns the next events from today on.
func (h *AgendaHandler) Upcoming(c *fiber.Ctx) error {
	anchor, technician, err := agendaWindow(c)
	if err != nil {
		return err
	}
	view, err := h.windowView(c, anchor, technician)
	if err != nil {
		return err
	}
	today := time.Now().Format(agenda.DateLayout)
	return c.JSON(fiber.Map{"data": view.Schedule.Upcoming(today, h.upcomingLimit)})
}

// windowView serves the cached view for a window, loading it on first use.
func (h *AgendaHandler) windowView(c *fiber.Ctx, anchor time.Time, technician string) (*agenda.MonthView, error) {
	if view := h.service.Snapshot(anchor, technician); view != nil {
		return view, nil
	}
	return h.service.LoadMonth(c.UserContext(), anchor, technician)
}

// DeleteEvent DELETE /agenda/:type/:id removes the backing record and
// returns the reloaded month.
func (h *AgendaHandler) DeleteEvent(c *fiber.Ctx) error {
	eventType, err := agenda.ParseEventType(c.Params("type"))
	if err != nil {
		return util.NewValidationError("unknown event type", map[string]any{"type": c.Params("type")})
	}
	anchor, technician, err := agendaWindow(c)
	if err != nil {
		return err
	}

	view, err := h.service.DeleteEvent(c.UserContext(), eventType, c.Params("id"), actorID(c), anchor, technician)
	if err != nil {
		return err
	}
	if view == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(fiber.Map{"data": h.monthResponse(view)})
}

func (h *AgendaHandler) monthResponse(view *agenda.MonthView) dto.MonthViewResponse {
	today := time.Now().Format(agenda.DateLayout)
	return dto.NewMonthViewResponse(view, today, h.upcomingLimit)
}
