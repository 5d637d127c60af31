package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// QuoteRepository encapsulates quote persistence.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	Update(ctx context.Context, quote *domain.Quote) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context, limit, offset int) ([]domain.Quote, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Quote, error)
}

type quoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository instantiates repository.
func NewQuoteRepository(pool *pgxpool.Pool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

const quoteColumns = `id, client_id, technician_id, title, description, status, total_cents, valid_until, created_at, updated_at`

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	const query = `
        INSERT INTO quotes (client_id, technician_id, title, description, status, total_cents, valid_until)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		quote.ClientID,
		quote.TechnicianID,
		quote.Title,
		quote.Description,
		quote.Status,
		quote.TotalCents,
		quote.ValidUntil,
	).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt)
}

func (r *quoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	const query = `
        UPDATE quotes SET client_id=$1, technician_id=$2, title=$3, description=$4,
            status=$5, total_cents=$6, valid_until=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		quote.ClientID,
		quote.TechnicianID,
		quote.Title,
		quote.Description,
		quote.Status,
		quote.TotalCents,
		quote.ValidUntil,
		quote.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	var quote domain.Quote
	if err := r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id=$1`, id).Scan(
		&quote.ID,
		&quote.ClientID,
		&quote.TechnicianID,
		&quote.Title,
		&quote.Description,
		&quote.Status,
		&quote.TotalCents,
		&quote.ValidUntil,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context, limit, offset int) ([]domain.Quote, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func (r *quoteRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Quote, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func scanQuotes(rows pgx.Rows) ([]domain.Quote, error) {
	var result []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		if err := rows.Scan(
			&quote.ID,
			&quote.ClientID,
			&quote.TechnicianID,
			&quote.Title,
			&quote.Description,
			&quote.Status,
			&quote.TotalCents,
			&quote.ValidUntil,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, quote)
	}
	return result, rows.Err()
}
