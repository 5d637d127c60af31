package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// AppointmentRepository encapsulates appointment request persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.AppointmentRequest) error
	Update(ctx context.Context, appointment *domain.AppointmentRequest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.AppointmentRequest, error)
	List(ctx context.Context, limit, offset int) ([]domain.AppointmentRequest, error)
	// Convert promotes a confirmed request into a maintenance contract via
	// the convert_appointment stored function; atomicity is backend-side.
	Convert(ctx context.Context, id string, frequency domain.MaintenanceFrequency) (contractID string, err error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, client_id, technician_id, title, description, requested_date, status, priority, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.AppointmentRequest) error {
	const query = `
        INSERT INTO appointment_requests (client_id, technician_id, title, description, requested_date, status, priority)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		appointment.ClientID,
		appointment.TechnicianID,
		appointment.Title,
		appointment.Description,
		appointment.RequestedDate,
		appointment.Status,
		appointment.Priority,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.AppointmentRequest) error {
	const query = `
        UPDATE appointment_requests SET client_id=$1, technician_id=$2, title=$3, description=$4,
            requested_date=$5, status=$6, priority=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		appointment.ClientID,
		appointment.TechnicianID,
		appointment.Title,
		appointment.Description,
		appointment.RequestedDate,
		appointment.Status,
		appointment.Priority,
		appointment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointment_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.AppointmentRequest, error) {
	var appointment domain.AppointmentRequest
	if err := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointment_requests WHERE id=$1`, id).Scan(
		&appointment.ID,
		&appointment.ClientID,
		&appointment.TechnicianID,
		&appointment.Title,
		&appointment.Description,
		&appointment.RequestedDate,
		&appointment.Status,
		&appointment.Priority,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, limit, offset int) ([]domain.AppointmentRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointment_requests ORDER BY requested_date LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AppointmentRequest
	for rows.Next() {
		var appointment domain.AppointmentRequest
		if err := rows.Scan(
			&appointment.ID,
			&appointment.ClientID,
			&appointment.TechnicianID,
			&appointment.Title,
			&appointment.Description,
			&appointment.RequestedDate,
			&appointment.Status,
			&appointment.Priority,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, appointment)
	}
	return result, rows.Err()
}

func (r *appointmentRepository) Convert(ctx context.Context, id string, frequency domain.MaintenanceFrequency) (string, error) {
	var contractID string
	err := r.pool.QueryRow(ctx, `SELECT convert_appointment($1, $2)`, id, frequency).Scan(&contractID)
	if err != nil {
		return "", err
	}
	return contractID, nil
}
