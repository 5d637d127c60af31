package dto

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/agenda"
)

// RosterClient is the trimmed client shape for the new-appointment form.
type RosterClient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RosterTechnician is the trimmed technician shape for the filter dropdown.
type RosterTechnician struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MonthViewResponse is one loaded agenda month: the six per-type lists, the
// rosters and the upcoming panel.
type MonthViewResponse struct {
	Month         string                 `json:"month"`
	Technician    string                 `json:"technician"`
	Appointments  []agenda.CalendarEvent `json:"appointments"`
	Orders        []agenda.CalendarEvent `json:"orders"`
	Maintenance   []agenda.CalendarEvent `json:"maintenance"`
	Installations []agenda.CalendarEvent `json:"installations"`
	Tickets       []agenda.CalendarEvent `json:"tickets"`
	Quotes        []agenda.CalendarEvent `json:"quotes"`
	Upcoming      []agenda.CalendarEvent `json:"upcoming"`
	Clients       []RosterClient         `json:"clients"`
	Technicians   []RosterTechnician     `json:"technicians"`
	Total         int                    `json:"total"`
	LoadedAt      time.Time              `json:"loaded_at"`
}

// NewMonthViewResponse flattens a loaded view. today anchors the upcoming
// panel's past-exclusion; upcomingLimit caps it.
func NewMonthViewResponse(view *agenda.MonthView, today string, upcomingLimit int) MonthViewResponse {
	resp := MonthViewResponse{
		Month:         view.Anchor.Format("2006-01"),
		Technician:    view.Technician,
		Appointments:  emptyIfNil(view.Schedule.Appointments),
		Orders:        emptyIfNil(view.Schedule.Orders),
		Maintenance:   emptyIfNil(view.Schedule.Maintenance),
		Installations: emptyIfNil(view.Schedule.Installations),
		Tickets:       emptyIfNil(view.Schedule.Tickets),
		Quotes:        emptyIfNil(view.Schedule.Quotes),
		Upcoming:      view.Schedule.Upcoming(today, upcomingLimit),
		Clients:       make([]RosterClient, 0, len(view.Clients)),
		Technicians:   make([]RosterTechnician, 0, len(view.Technicians)),
		Total:         view.Schedule.Total(),
		LoadedAt:      view.LoadedAt,
	}
	for _, client := range view.Clients {
		resp.Clients = append(resp.Clients, RosterClient{ID: client.ID, Name: client.Name})
	}
	for _, technician := range view.Technicians {
		resp.Technicians = append(resp.Technicians, RosterTechnician{ID: technician.ID, Name: technician.Name})
	}
	return resp
}

func emptyIfNil(events []agenda.CalendarEvent) []agenda.CalendarEvent {
	if events == nil {
		return []agenda.CalendarEvent{}
	}
	return events
}

// SearchResponse is the command-palette result shape.
type SearchResponse struct {
	Clients []ClientResponse `json:"clients"`
	Orders  []OrderResponse  `json:"orders"`
	Tickets []TicketResponse `json:"tickets"`
}
