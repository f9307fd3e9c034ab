// Package postgres provides the PostgreSQL implementation of the manual
// cash entry repository. Amounts cross the SQL boundary as decimal strings
// (numeric casts) so no precision is lost.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/platform/persistence"
)

// EntryRepository implements the entry.Repository interface for PostgreSQL
type EntryRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewEntryRepository creates a new PostgreSQL manual cash entry repository.
func NewEntryRepository(logger *slog.Logger, db *persistence.PostgresDB) entry.Repository {
	return &EntryRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new manual cash entry
func (r *EntryRepository) Create(ctx context.Context, e *entry.ManualCashEntry) error {
	query := `
		INSERT INTO manual_cash_entries (id, entry_date, amount, entry_type, description, project_id, cost_center_id, document_references, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10)
	`

	docRefs := e.DocumentReferences
	if docRefs == nil {
		docRefs = []string{}
	}

	_, err := r.querier.Exec(ctx, query,
		e.ID,
		e.EntryDate.Time(),
		e.Amount.String(),
		string(e.Type),
		e.Description,
		e.ProjectID,
		e.CostCenterID,
		docRefs,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create manual cash entry", "error", err)
		return fmt.Errorf("failed to create manual cash entry: %w", err)
	}

	return nil
}

// GetByID retrieves a manual cash entry by its ID
func (r *EntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entry.ManualCashEntry, error) {
	query := `
		SELECT id, entry_date, amount::text, entry_type, description, project_id, cost_center_id, document_references, created_at, updated_at
		FROM manual_cash_entries
		WHERE id = $1
	`

	e, err := r.scanEntry(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrEntryNotFound{ID: id}
		}
		r.logger.Error("Failed to get manual cash entry", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get manual cash entry: %w", err)
	}

	return e, nil
}

// Delete removes a manual cash entry by its ID.
// Returns ErrEntryNotFound when no row matches.
func (r *EntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM manual_cash_entries WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete manual cash entry", "id", id.String(), "error", err)
		return fmt.Errorf("failed to delete manual cash entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entry.ErrEntryNotFound{ID: id}
	}

	return nil
}

// ExistsByID reports whether a manual cash entry with the given ID exists
func (r *EntryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM manual_cash_entries WHERE id = $1)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error("Failed to check manual cash entry existence", "id", id.String(), "error", err)
		return false, fmt.Errorf("failed to check manual cash entry existence: %w", err)
	}

	return exists, nil
}

// FindByDateRange retrieves entries with an entry date in [start, end]
// inclusive, ordered by entry date ascending.
func (r *EntryRepository) FindByDateRange(ctx context.Context, start, end shared.Date) ([]*entry.ManualCashEntry, error) {
	query := `
		SELECT id, entry_date, amount::text, entry_type, description, project_id, cost_center_id, document_references, created_at, updated_at
		FROM manual_cash_entries
		WHERE entry_date >= $1 AND entry_date <= $2
		ORDER BY entry_date ASC
	`

	rows, err := r.querier.Query(ctx, query, start.Time(), end.Time())
	if err != nil {
		r.logger.Error("Failed to query manual cash entries by date range", "start", start.String(), "end", end.String(), "error", err)
		return nil, fmt.Errorf("failed to query manual cash entries by date range: %w", err)
	}
	defer rows.Close()

	var entries []*entry.ManualCashEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manual cash entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manual cash entries: %w", err)
	}

	return entries, nil
}

// SumByTypeInRange returns the total amount of entries of the given type
// with an entry date in [start, end] inclusive, zero when none match.
func (r *EntryRepository) SumByTypeInRange(ctx context.Context, entryType entry.Type, start, end shared.Date) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::text
		FROM manual_cash_entries
		WHERE entry_type = $1 AND entry_date >= $2 AND entry_date <= $3
	`

	var sum string
	if err := r.querier.QueryRow(ctx, query, string(entryType), start.Time(), end.Time()).Scan(&sum); err != nil {
		r.logger.Error("Failed to sum manual cash entries", "type", string(entryType), "error", err)
		return decimal.Zero, fmt.Errorf("failed to sum manual cash entries: %w", err)
	}

	total, err := decimal.NewFromString(sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse manual cash entry sum %q: %w", sum, err)
	}

	return total, nil
}

// scanEntry reads one entry row, converting SQL representations back to
// domain types.
func (r *EntryRepository) scanEntry(row pgx.Row) (*entry.ManualCashEntry, error) {
	var (
		e            entry.ManualCashEntry
		entryDate    time.Time
		amount       string
		entryType    string
		projectID    *uuid.UUID
		costCenterID *uuid.UUID
		docRefs      []string
	)

	err := row.Scan(
		&e.ID,
		&entryDate,
		&amount,
		&entryType,
		&e.Description,
		&projectID,
		&costCenterID,
		&docRefs,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}

	e.EntryDate = shared.DateOf(entryDate)
	e.Amount = parsedAmount
	e.Type = entry.Type(entryType)
	e.ProjectID = projectID
	e.CostCenterID = costCenterID
	e.DocumentReferences = docRefs

	return &e, nil
}
