package postgres

import (
	"context"
	"fmt"

	"banking-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository. Entries are append-only;
// there is no update or delete path.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts one ledger entry within a database transaction and fills in
// the sequence-assigned entry ID.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (account_id, kind, amount, counterparty_id, resulting_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		e.AccountID, e.Kind, e.Amount, e.CounterpartyID, e.ResultingBalance, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByAccount returns an account's entries ordered oldest first.
func (r *LedgerRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT id, account_id, kind, amount, counterparty_id, resulting_balance, created_at
		FROM ledger_entries WHERE account_id = $1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.AccountID, &e.Kind, &e.Amount,
			&e.CounterpartyID, &e.ResultingBalance, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
