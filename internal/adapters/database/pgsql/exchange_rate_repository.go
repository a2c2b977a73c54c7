package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quantleap/refdata/internal/apperrors"
	"github.com/quantleap/refdata/internal/core/domain"
	portsrepo "github.com/quantleap/refdata/internal/core/ports/repositories"
	"github.com/quantleap/refdata/internal/models"
	"github.com/quantleap/refdata/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange-rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{pool: pool}
}

// SaveExchangeRate inserts a new exchange rate into the database.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	row := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		row.ExchangeRateID, row.FromCurrencyCode, row.ToCurrencyCode, row.Rate, row.DateEffective,
		row.CreatedAt, row.CreatedBy, row.LastUpdatedAt, row.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting exchange rate: %w", err)
	}
	return nil
}

// FindExchangeRate retrieves the most recently effective rate for the pair.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC
		LIMIT 1
	`
	var row models.ExchangeRate
	err := r.pool.QueryRow(ctx, query, fromCode, toCode).Scan(
		&row.ExchangeRateID, &row.FromCurrencyCode, &row.ToCurrencyCode, &row.Rate, &row.DateEffective,
		&row.CreatedAt, &row.CreatedBy, &row.LastUpdatedAt, &row.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}

	rate := mapping.ToDomainExchangeRate(row)
	return &rate, nil
}
