package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// OvertimeRepository encapsulates overtime entry persistence.
type OvertimeRepository interface {
	Create(ctx context.Context, entry *domain.OvertimeEntry) error
	Review(ctx context.Context, id string, status domain.OvertimeStatus, reviewerID string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.OvertimeEntry, error)
	ListByTechnician(ctx context.Context, technicianID string, from, to time.Time) ([]domain.OvertimeEntry, error)
	ListPending(ctx context.Context) ([]domain.OvertimeEntry, error)
}

type overtimeRepository struct {
	pool *pgxpool.Pool
}

// NewOvertimeRepository instantiates repository.
func NewOvertimeRepository(pool *pgxpool.Pool) OvertimeRepository {
	return &overtimeRepository{pool: pool}
}

const overtimeColumns = `id, technician_id, work_date, hours, reason, status, reviewed_by, created_at, updated_at`

func (r *overtimeRepository) Create(ctx context.Context, entry *domain.OvertimeEntry) error {
	const query = `
        INSERT INTO overtime_entries (technician_id, work_date, hours, reason, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		entry.TechnicianID,
		entry.WorkDate,
		entry.Hours,
		entry.Reason,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *overtimeRepository) Review(ctx context.Context, id string, status domain.OvertimeStatus, reviewerID string) error {
	const query = `
        UPDATE overtime_entries SET status=$1, reviewed_by=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, status, reviewerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM overtime_entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string) (*domain.OvertimeEntry, error) {
	var entry domain.OvertimeEntry
	if err := r.pool.QueryRow(ctx, `SELECT `+overtimeColumns+` FROM overtime_entries WHERE id=$1`, id).Scan(
		&entry.ID,
		&entry.TechnicianID,
		&entry.WorkDate,
		&entry.Hours,
		&entry.Reason,
		&entry.Status,
		&entry.ReviewedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *overtimeRepository) ListByTechnician(ctx context.Context, technicianID string, from, to time.Time) ([]domain.OvertimeEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+overtimeColumns+` FROM overtime_entries
         WHERE technician_id=$1 AND work_date BETWEEN $2 AND $3 ORDER BY work_date`,
		technicianID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOvertime(rows)
}

func (r *overtimeRepository) ListPending(ctx context.Context) ([]domain.OvertimeEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+overtimeColumns+` FROM overtime_entries WHERE status=$1 ORDER BY work_date`,
		domain.OvertimeStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOvertime(rows)
}

func scanOvertime(rows pgx.Rows) ([]domain.OvertimeEntry, error) {
	var result []domain.OvertimeEntry
	for rows.Next() {
		var entry domain.OvertimeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.TechnicianID,
			&entry.WorkDate,
			&entry.Hours,
			&entry.Reason,
			&entry.Status,
			&entry.ReviewedBy,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
