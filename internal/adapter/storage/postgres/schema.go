package postgres

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so the service can create its tables at
// startup, the way the original deployment did.
//
// ledger_entries.amount allows zero: account creation always records an
// initial DEPOSIT entry, including for accounts opened with nothing.
// Sequence-assigned ids are strictly increasing and never reused; gaps from
// rolled-back transactions are fine.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id BIGSERIAL PRIMARY KEY,
		account_id UUID NOT NULL REFERENCES accounts(id),
		kind TEXT NOT NULL CHECK (kind IN ('DEPOSIT', 'WITHDRAWAL', 'TRANSFER_OUT', 'TRANSFER_IN')),
		amount BIGINT NOT NULL CHECK (amount >= 0),
		counterparty_id UUID REFERENCES accounts(id),
		resulting_balance BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_account_id ON ledger_entries (account_id, id)`,
}

// InitSchema creates the accounts and ledger_entries tables if they do not
// already exist.
func InitSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
	}
	return nil
}
