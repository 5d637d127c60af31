package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/agenda"
)

// AgendaRepository reads the unified_agenda view and dispatches event deletes
// to the owning tables. The view itself is never written.
type AgendaRepository interface {
	agenda.Source
	DeleteEvent(ctx context.Context, eventType agenda.EventType, id string) error
}

type agendaRepository struct {
	pool *pgxpool.Pool
}

// NewAgendaRepository instantiates repository.
func NewAgendaRepository(pool *pgxpool.Pool) AgendaRepository {
	return &agendaRepository{pool: pool}
}

// rangeQuery filters on calendar days, not timestamps: the range is closed on
// both ends, so an event at any hour of the last day still falls inside.
func rangeQuery(technicianFiltered bool) string {
	query := `
        SELECT event_id, event_type, start_time, client_id, client_name,
               technician_id, technician_name, status, priority, title, description, created_at
        FROM unified_agenda
        WHERE ((start_time::date BETWEEN $1::date AND $2::date)
           OR (start_time IS NULL AND created_at::date BETWEEN $1::date AND $2::date))`
	if technicianFiltered {
		query += " AND technician_id=$3"
	}
	return query + " ORDER BY start_time NULLS LAST, created_at"
}

// FetchRange pulls the month's rows, optionally narrowed to one technician.
func (r *agendaRepository) FetchRange(ctx context.Context, from, to time.Time, technicianID string) ([]agenda.Row, error) {
	args := []any{from, to}
	if technicianID != "" {
		args = append(args, technicianID)
	}

	rows, err := r.pool.Query(ctx, rangeQuery(technicianID != ""), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []agenda.Row
	for rows.Next() {
		var (
			row     agenda.Row
			rawType string
		)
		if err := rows.Scan(
			&row.EventID,
			&rawType,
			&row.StartTime,
			&row.ClientID,
			&row.ClientName,
			&row.TechnicianID,
			&row.TechnicianName,
			&row.Status,
			&row.Priority,
			&row.Title,
			&row.Description,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		eventType, err := agenda.ParseEventType(rawType)
		if err != nil {
			return nil, err
		}
		row.EventType = eventType
		result = append(result, row)
	}
	return result, rows.Err()
}

// DeleteEvent removes the row from the table owning the event type. The
// table name comes from the closed TableFor mapping, never from input.
func (r *agendaRepository) DeleteEvent(ctx context.Context, eventType agenda.EventType, id string) error {
	table, err := agenda.TableFor(eventType)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, table), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
