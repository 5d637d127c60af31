package agenda

import "sort"

// TypeFilterAll is the sentinel meaning "no type filter".
const TypeFilterAll = "all"

// TechnicianFilterAll is the sentinel meaning "no technician filter".
const TechnicianFilterAll = "all"

// DefaultUpcomingLimit bounds the upcoming panel when no limit is given.
const DefaultUpcomingLimit = 10

// Schedule holds one month of agenda rows partitioned into six disjoint
// per-type lists. Values are immutable once built; every mutation to an
// underlying table produces a fresh Schedule via a full reload.
type Schedule struct {
	Appointments  []CalendarEvent
	Orders        []CalendarEvent
	Maintenance   []CalendarEvent
	Installations []CalendarEvent
	Tickets       []CalendarEvent
	Quotes        []CalendarEvent
}

// BuildSchedule partitions view rows by type, preserving fetch order within
// each list.
func BuildSchedule(rows []Row) Schedule {
	var s Schedule
	for _, row := range rows {
		event := toEvent(row)
		switch row.EventType {
		case TypeAppointment:
			s.Appointments = append(s.Appointments, event)
		case TypeOrder:
			s.Orders = append(s.Orders, event)
		case TypeMaintenance:
			s.Maintenance = append(s.Maintenance, event)
		case TypeInstallation:
			s.Installations = append(s.Installations, event)
		case TypeTicket:
			s.Tickets = append(s.Tickets, event)
		case TypeQuote:
			s.Quotes = append(s.Quotes, event)
		}
	}
	return s
}

func (s Schedule) listFor(t EventType) []CalendarEvent {
	switch t {
	case TypeAppointment:
		return s.Appointments
	case TypeOrder:
		return s.Orders
	case TypeMaintenance:
		return s.Maintenance
	case TypeInstallation:
		return s.Installations
	case TypeTicket:
		return s.Tickets
	case TypeQuote:
		return s.Quotes
	}
	return nil
}

// Total returns the number of events across all six lists.
func (s Schedule) Total() int {
	n := 0
	for _, t := range TypeOrderList {
		n += len(s.listFor(t))
	}
	return n
}

// EventsForDay returns every event whose resolved date equals day, filtered
// by typeFilter (TypeFilterAll or a single type name). Results keep the fixed
// group order appointment, order, maintenance, installation, ticket, quote;
// there is deliberately no cross-type ordering by time of day.
func (s Schedule) EventsForDay(day, typeFilter string) []CalendarEvent {
	out := make([]CalendarEvent, 0)
	for _, t := range TypeOrderList {
		if typeFilter != TypeFilterAll && typeFilter != string(t) {
			continue
		}
		for _, event := range s.listFor(t) {
			if event.Date == day {
				out = append(out, event)
			}
		}
	}
	return out
}

// Upcoming merges all six lists, drops events dated before today and returns
// the first limit events sorted ascending by resolved date. The comparison is
// a plain string compare, valid because resolved dates are zero-padded ISO.
func (s Schedule) Upcoming(today string, limit int) []CalendarEvent {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	merged := make([]CalendarEvent, 0, s.Total())
	for _, t := range TypeOrderList {
		for _, event := range s.listFor(t) {
			if event.Date < today {
				continue
			}
			merged = append(merged, event)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date < merged[j].Date
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
