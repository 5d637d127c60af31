package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// InstallationRepository encapsulates installation persistence.
type InstallationRepository interface {
	Create(ctx context.Context, installation *domain.Installation) error
	Update(ctx context.Context, installation *domain.Installation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Installation, error)
	List(ctx context.Context, limit, offset int) ([]domain.Installation, error)
}

type installationRepository struct {
	pool *pgxpool.Pool
}

// NewInstallationRepository instantiates repository.
func NewInstallationRepository(pool *pgxpool.Pool) InstallationRepository {
	return &installationRepository{pool: pool}
}

const installationColumns = `id, client_id, technician_id, title, description, start_date, status, created_at, updated_at`

func (r *installationRepository) Create(ctx context.Context, installation *domain.Installation) error {
	const query = `
        INSERT INTO installations (client_id, technician_id, title, description, start_date, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		installation.ClientID,
		installation.TechnicianID,
		installation.Title,
		installation.Description,
		installation.StartDate,
		installation.Status,
	).Scan(&installation.ID, &installation.CreatedAt, &installation.UpdatedAt)
}

func (r *installationRepository) Update(ctx context.Context, installation *domain.Installation) error {
	const query = `
        UPDATE installations SET client_id=$1, technician_id=$2, title=$3, description=$4,
            start_date=$5, status=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		installation.ClientID,
		installation.TechnicianID,
		installation.Title,
		installation.Description,
		installation.StartDate,
		installation.Status,
		installation.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *installationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM installations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *installationRepository) GetByID(ctx context.Context, id string) (*domain.Installation, error) {
	var installation domain.Installation
	if err := r.pool.QueryRow(ctx, `SELECT `+installationColumns+` FROM installations WHERE id=$1`, id).Scan(
		&installation.ID,
		&installation.ClientID,
		&installation.TechnicianID,
		&installation.Title,
		&installation.Description,
		&installation.StartDate,
		&installation.Status,
		&installation.CreatedAt,
		&installation.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &installation, nil
}

func (r *installationRepository) List(ctx context.Context, limit, offset int) ([]domain.Installation, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+installationColumns+` FROM installations ORDER BY start_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Installation
	for rows.Next() {
		var installation domain.Installation
		if err := rows.Scan(
			&installation.ID,
			&installation.ClientID,
			&installation.TechnicianID,
			&installation.Title,
			&installation.Description,
			&installation.StartDate,
			&installation.Status,
			&installation.CreatedAt,
			&installation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, installation)
	}
	return result, rows.Err()
}
