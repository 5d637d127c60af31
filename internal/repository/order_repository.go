package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// OrderFilter captures service order search parameters.
type OrderFilter struct {
	ClientID      *string
	TechnicianID  *string
	Statuses      []domain.OrderStatus
	Priorities    []domain.Priority
	SearchTerm    *string
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Limit         int
	Offset        int
}

// OrderRepository encapsulates service order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.ServiceOrder) error
	Update(ctx context.Context, order *domain.ServiceOrder) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
	GetByNumber(ctx context.Context, number string) (*domain.ServiceOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.ServiceOrder, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, number, client_id, equipment_id, technician_id, title, description,
               status, priority, scheduled_date, completed_at, total_cents, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.ServiceOrder) error {
	const query = `
        INSERT INTO service_orders (number, client_id, equipment_id, technician_id, title, description, status, priority, scheduled_date, total_cents)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		order.Number,
		order.ClientID,
		order.EquipmentID,
		order.TechnicianID,
		order.Title,
		order.Description,
		order.Status,
		order.Priority,
		order.ScheduledDate,
		order.TotalCents,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.ServiceOrder) error {
	const query = `
        UPDATE service_orders SET client_id=$1, equipment_id=$2, technician_id=$3, title=$4,
            description=$5, status=$6, priority=$7, scheduled_date=$8, completed_at=$9,
            total_cents=$10, updated_at=NOW()
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		order.ClientID,
		order.EquipmentID,
		order.TechnicianID,
		order.Title,
		order.Description,
		order.Status,
		order.Priority,
		order.ScheduledDate,
		order.CompletedAt,
		order.TotalCents,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM service_orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return r.fetchSingle(ctx, `SELECT `+orderColumns+` FROM service_orders WHERE id=$1`, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*domain.ServiceOrder, error) {
	return r.fetchSingle(ctx, `SELECT `+orderColumns+` FROM service_orders WHERE number=$1`, number)
}

func (r *orderRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.ServiceOrder, error) {
	var order domain.ServiceOrder
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&order.ID,
		&order.Number,
		&order.ClientID,
		&order.EquipmentID,
		&order.TechnicianID,
		&order.Title,
		&order.Description,
		&order.Status,
		&order.Priority,
		&order.ScheduledDate,
		&order.CompletedAt,
		&order.TotalCents,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.ServiceOrder, error) {
	base := `SELECT ` + orderColumns + ` FROM service_orders`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, fmt.Sprintf("client_id=$%d", len(args)))
	}
	if filter.TechnicianID != nil {
		args = append(args, *filter.TechnicianID)
		clauses = append(clauses, fmt.Sprintf("technician_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, priority := range filter.Priorities {
			args = append(args, priority)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.ScheduledFrom != nil {
		args = append(args, *filter.ScheduledFrom)
		clauses = append(clauses, fmt.Sprintf("scheduled_date >= $%d", len(args)))
	}
	if filter.ScheduledTo != nil {
		args = append(args, *filter.ScheduledTo)
		clauses = append(clauses, fmt.Sprintf("scheduled_date <= $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(number) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY updated_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]domain.ServiceOrder, error) {
	var result []domain.ServiceOrder
	for rows.Next() {
		var order domain.ServiceOrder
		if err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.ClientID,
			&order.EquipmentID,
			&order.TechnicianID,
			&order.Title,
			&order.Description,
			&order.Status,
			&order.Priority,
			&order.ScheduledDate,
			&order.CompletedAt,
			&order.TotalCents,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
