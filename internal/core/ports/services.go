package ports

import (
	"context"

	"banking-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// AccountService defines single-account business operations.
type AccountService interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)
	// Deposit adds funds and returns the new balance.
	Deposit(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
	// Withdraw removes funds and returns the new balance.
	Withdraw(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
}

// CreateAccountRequest holds validated input for account creation.
type CreateAccountRequest struct {
	Name           string
	InitialDeposit int64
}

// TransferService moves funds between two accounts as one atomic unit.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// TransferRequest holds validated input for a transfer.
type TransferRequest struct {
	SourceID uuid.UUID
	DestID   uuid.UUID
	Amount   int64
}

// TransferResult holds both post-transfer balances.
type TransferResult struct {
	SourceBalance int64
	DestBalance   int64
}

// ReportingService defines read-only queries. Results reflect only committed
// state, never a transfer mid-flight.
type ReportingService interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetHistory(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error)
}

// PolicyService searches the static bank policy handbook.
type PolicyService interface {
	Search(query string) []domain.Policy
}
