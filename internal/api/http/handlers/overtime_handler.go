package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eletroclima/fieldops-service/internal/api/dto"
	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/domain"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/pkg/util"
)

// OvertimeHandler serves overtime tracking. Submissions belong to the
// calling technician; review is an admin action enforced here because the
// /overtime prefix itself is open to any staff.
type OvertimeHandler struct {
	service *service.OvertimeService
}

// NewOvertimeHandler constructs handler.
func NewOvertimeHandler(overtimeService *service.OvertimeService) *OvertimeHandler {
	return &OvertimeHandler{service: overtimeService}
}

// Submit POST /overtime.
func (h *OvertimeHandler) Submit(c *fiber.Ctx) error {
	var req dto.OvertimeRequestBody
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	entry, err := h.service.Submit(c.UserContext(), actorID(c), service.OvertimeInput{
		WorkDate: req.WorkDate,
		Hours:    req.Hours,
		Reason:   req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewOvertimeResponse(entry)})
}

// Review PUT /overtime/:id/status.
func (h *OvertimeHandler) Review(c *fiber.Ctx) error {
	authCtx, ok := auth.AuthFromCtx(c)
	if !ok || !authCtx.IsAdmin() {
		return util.NewAdminOnly()
	}
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	entry, err := h.service.Review(c.UserContext(), actorID(c), c.Params("id"), domain.OvertimeStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOvertimeResponse(entry)})
}

// Delete DELETE /overtime/:id.
func (h *OvertimeHandler) Delete(c *fiber.Ctx) error {
	entry, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	authCtx, _ := auth.AuthFromCtx(c)
	if entry.TechnicianID != actorID(c) && !authCtx.IsAdmin() {
		return util.NewForbidden("not your entry")
	}

	if err := h.service.Delete(c.UserContext(), entry.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /overtime. Admins see the pending queue or any technician;
// technicians see their own history.
func (h *OvertimeHandler) List(c *fiber.Ctx) error {
	authCtx, _ := auth.AuthFromCtx(c)

	if c.QueryBool("pending") {
		if !authCtx.IsAdmin() {
			return util.NewAdminOnly()
		}
		entries, err := h.service.ListPending(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": overtimeResponses(entries)})
	}

	technicianID := actorID(c)
	if other := c.Query("technician_id"); other != "" && authCtx.IsAdmin() {
		technicianID = other
	}
	from, to := parseDateWindow(c)
	entries, err := h.service.ListByTechnician(c.UserContext(), technicianID, from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overtimeResponses(entries)})
}

func overtimeResponses(entries []domain.OvertimeEntry) []dto.OvertimeResponse {
	items := make([]dto.OvertimeResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewOvertimeResponse(&entries[i]))
	}
	return items
}

// parseDateWindow defaults to the current month.
func parseDateWindow(c *fiber.Ctx) (from, to time.Time) {
	now := time.Now()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 1, -1)
	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			to = parsed
		}
	}
	return from, to
}
