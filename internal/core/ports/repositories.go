package ports

import (
	"context"

	"banking-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx run inside a database transaction; lookups return
// nil (no error) when the account does not exist.
type AccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// GetByIDForUpdate locks the account row (SELECT ... FOR UPDATE).
	// MUST be called within a transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error
}

// LedgerRepository defines persistence for the append-only transaction log.
type LedgerRepository interface {
	// Append inserts one entry within a database transaction and fills in
	// the generated entry ID.
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// ListByAccount returns an account's entries ordered oldest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error)
}

// DBTransactor provides the atomic unit of work: every mutation sequence runs
// on one pgx.Tx and either commits as a whole or rolls back as a whole.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
