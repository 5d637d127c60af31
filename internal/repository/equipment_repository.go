package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// EquipmentRepository encapsulates equipment persistence.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Equipment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Equipment, error)
}

type equipmentRepository struct {
	pool *pgxpool.Pool
}

// NewEquipmentRepository instantiates repository.
func NewEquipmentRepository(pool *pgxpool.Pool) EquipmentRepository {
	return &equipmentRepository{pool: pool}
}

const equipmentColumns = `id, client_id, name, kind, serial_number, location, installed_at, notes, created_at, updated_at`

func (r *equipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) error {
	const query = `
        INSERT INTO equipments (client_id, name, kind, serial_number, location, installed_at, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		equipment.ClientID,
		equipment.Name,
		equipment.Kind,
		equipment.SerialNumber,
		equipment.Location,
		equipment.InstalledAt,
		equipment.Notes,
	).Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *domain.Equipment) error {
	const query = `
        UPDATE equipments SET client_id=$1, name=$2, kind=$3, serial_number=$4, location=$5,
            installed_at=$6, notes=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		equipment.ClientID,
		equipment.Name,
		equipment.Kind,
		equipment.SerialNumber,
		equipment.Location,
		equipment.InstalledAt,
		equipment.Notes,
		equipment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM equipments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var equipment domain.Equipment
	if err := r.pool.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipments WHERE id=$1`, id).Scan(
		&equipment.ID,
		&equipment.ClientID,
		&equipment.Name,
		&equipment.Kind,
		&equipment.SerialNumber,
		&equipment.Location,
		&equipment.InstalledAt,
		&equipment.Notes,
		&equipment.CreatedAt,
		&equipment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Equipment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+equipmentColumns+` FROM equipments WHERE client_id=$1 ORDER BY name`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEquipments(rows)
}

func (r *equipmentRepository) List(ctx context.Context, limit, offset int) ([]domain.Equipment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+equipmentColumns+` FROM equipments ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEquipments(rows)
}

func scanEquipments(rows pgx.Rows) ([]domain.Equipment, error) {
	var result []domain.Equipment
	for rows.Next() {
		var equipment domain.Equipment
		if err := rows.Scan(
			&equipment.ID,
			&equipment.ClientID,
			&equipment.Name,
			&equipment.Kind,
			&equipment.SerialNumber,
			&equipment.Location,
			&equipment.InstalledAt,
			&equipment.Notes,
			&equipment.CreatedAt,
			&equipment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, equipment)
	}
	return result, rows.Err()
}
