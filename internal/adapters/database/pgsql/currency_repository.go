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

// PgxCurrencyRepository implements the currency repository ports using pgxpool.
type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{pool: pool}
}

// SaveCurrency inserts or updates a currency. CurrencyCode is the unique
// identifier; on conflict the descriptor fields and the update audit
// columns are refreshed while created_at/created_by are preserved.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency, audit domain.AuditFields) error {
	row := mapping.ToModelCurrency(currency, audit)

	query := `
		INSERT INTO currencies (currency_code, precision, iso4217, name, currency_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_code) DO UPDATE SET
			precision = EXCLUDED.precision,
			iso4217 = EXCLUDED.iso4217,
			name = EXCLUDED.name,
			currency_type = EXCLUDED.currency_type,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.pool.Exec(ctx, query,
		row.CurrencyCode,
		row.Precision,
		row.ISO4217,
		row.Name,
		row.CurrencyType,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", currency.Code(), err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	query := `
		SELECT currency_code, precision, iso4217, name, currency_type, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var row models.Currency
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&row.CurrencyCode,
		&row.Precision,
		&row.ISO4217,
		&row.Name,
		&row.CurrencyType,
		&row.CreatedAt,
		&row.CreatedBy,
		&row.LastUpdatedAt,
		&row.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Currency{}, apperrors.ErrNotFound
		}
		return domain.Currency{}, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	return mapping.ToDomainCurrency(row)
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, precision, iso4217, name, currency_type, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	rowModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var m models.Currency
		err := row.Scan(
			&m.CurrencyCode,
			&m.Precision,
			&m.ISO4217,
			&m.Name,
			&m.CurrencyType,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(rowModels)
}
