package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind represents the kind of money movement recorded in the ledger.
type EntryKind string

const (
	EntryKindDeposit     EntryKind = "DEPOSIT"
	EntryKindWithdrawal  EntryKind = "WITHDRAWAL"
	EntryKindTransferOut EntryKind = "TRANSFER_OUT"
	EntryKindTransferIn  EntryKind = "TRANSFER_IN"
)

// LedgerEntry is an immutable, append-only record of one balance mutation.
// IDs come from a database sequence: strictly increasing, never reused, so
// per-account entry order is the audit order.
type LedgerEntry struct {
	ID               int64      `json:"id"`
	AccountID        uuid.UUID  `json:"account_id"`
	Kind             EntryKind  `json:"kind"`
	Amount           int64      `json:"amount"`
	CounterpartyID   *uuid.UUID `json:"counterparty_id,omitempty"`
	ResultingBalance int64      `json:"resulting_balance"`
	CreatedAt        time.Time  `json:"created_at"`
}

// IsTransferLeg reports whether the entry is one half of a transfer.
func (e *LedgerEntry) IsTransferLeg() bool {
	return e.Kind == EntryKindTransferOut || e.Kind == EntryKindTransferIn
}
