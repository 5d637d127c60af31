package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// MaintenanceRepository encapsulates maintenance contract persistence.
type MaintenanceRepository interface {
	Create(ctx context.Context, contract *domain.MaintenanceContract) error
	Update(ctx context.Context, contract *domain.MaintenanceContract) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceContract, error)
	List(ctx context.Context, limit, offset int) ([]domain.MaintenanceContract, error)
	// ListDueBy returns active contracts whose next visit falls on or
	// before the deadline; feeds the maintenance-due scheduler.
	ListDueBy(ctx context.Context, deadline time.Time) ([]domain.MaintenanceContract, error)
	// AdvanceNextDate rolls next_maintenance_date forward one cadence.
	AdvanceNextDate(ctx context.Context, id string, next time.Time) error
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository instantiates repository.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

const maintenanceColumns = `id, client_id, equipment_id, technician_id, title, frequency, start_date,
               next_maintenance_date, status, monthly_cents, created_at, updated_at`

func (r *maintenanceRepository) Create(ctx context.Context, contract *domain.MaintenanceContract) error {
	const query = `
        INSERT INTO maintenance_contracts (client_id, equipment_id, technician_id, title, frequency, start_date, next_maintenance_date, status, monthly_cents)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		contract.ClientID,
		contract.EquipmentID,
		contract.TechnicianID,
		contract.Title,
		contract.Frequency,
		contract.StartDate,
		contract.NextMaintenanceDate,
		contract.Status,
		contract.MonthlyCents,
	).Scan(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
}

func (r *maintenanceRepository) Update(ctx context.Context, contract *domain.MaintenanceContract) error {
	const query = `
        UPDATE maintenance_contracts SET client_id=$1, equipment_id=$2, technician_id=$3, title=$4,
            frequency=$5, start_date=$6, next_maintenance_date=$7, status=$8, monthly_cents=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		contract.ClientID,
		contract.EquipmentID,
		contract.TechnicianID,
		contract.Title,
		contract.Frequency,
		contract.StartDate,
		contract.NextMaintenanceDate,
		contract.Status,
		contract.MonthlyCents,
		contract.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM maintenance_contracts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceContract, error) {
	var contract domain.MaintenanceContract
	if err := r.pool.QueryRow(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_contracts WHERE id=$1`, id).Scan(
		&contract.ID,
		&contract.ClientID,
		&contract.EquipmentID,
		&contract.TechnicianID,
		&contract.Title,
		&contract.Frequency,
		&contract.StartDate,
		&contract.NextMaintenanceDate,
		&contract.Status,
		&contract.MonthlyCents,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *maintenanceRepository) List(ctx context.Context, limit, offset int) ([]domain.MaintenanceContract, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_contracts ORDER BY next_maintenance_date LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContracts(rows)
}

func (r *maintenanceRepository) ListDueBy(ctx context.Context, deadline time.Time) ([]domain.MaintenanceContract, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_contracts
         WHERE status=$1 AND next_maintenance_date <= $2 ORDER BY next_maintenance_date`,
		domain.MaintenanceStatusActive, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContracts(rows)
}

func (r *maintenanceRepository) AdvanceNextDate(ctx context.Context, id string, next time.Time) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE maintenance_contracts SET next_maintenance_date=$1, updated_at=NOW() WHERE id=$2`, next, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanContracts(rows pgx.Rows) ([]domain.MaintenanceContract, error) {
	var result []domain.MaintenanceContract
	for rows.Next() {
		var contract domain.MaintenanceContract
		if err := rows.Scan(
			&contract.ID,
			&contract.ClientID,
			&contract.EquipmentID,
			&contract.TechnicianID,
			&contract.Title,
			&contract.Frequency,
			&contract.StartDate,
			&contract.NextMaintenanceDate,
			&contract.Status,
			&contract.MonthlyCents,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, contract)
	}
	return result, rows.Err()
}
