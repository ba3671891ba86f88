package service

import (
	"context"
	"fmt"
	"time"

	"banking-ledger/internal/core/domain"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService. Every mutation runs
// inside one database transaction: the balance update and its ledger entry
// commit together or not at all.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		transactor:  transactor,
		log:         log,
	}
}

// CreateAccount opens an account and records its initial deposit entry.
// A zero opening balance still gets a DEPOSIT entry so every account's
// history starts at its creation.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*domain.Account, error) {
	if req.InitialDeposit < 0 {
		return nil, apperror.ErrNegativeInitialDeposit()
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uuid.New(),
		Name:      req.Name,
		Balance:   req.InitialDeposit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accountRepo.Create(ctx, dbTx, account); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("create account: %w", err))
	}

	entry := &domain.LedgerEntry{
		AccountID:        account.ID,
		Kind:             domain.EntryKindDeposit,
		Amount:           req.InitialDeposit,
		ResultingBalance: req.InitialDeposit,
		CreatedAt:        now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("append initial deposit: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Int64("initial_deposit", req.InitialDeposit).
		Msg("account created")

	return account, nil
}

// Deposit adds funds to an account and returns the new balance.
func (s *AccountServiceImpl) Deposit(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	return s.appendEntry(ctx, accountID, domain.EntryKindDeposit, amount)
}

// Withdraw removes funds from an account and returns the new balance.
func (s *AccountServiceImpl) Withdraw(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	return s.appendEntry(ctx, accountID, domain.EntryKindWithdrawal, amount)
}

// appendEntry performs a single-account mutation: lock the row, apply the
// amount, append the ledger entry, commit.
func (s *AccountServiceImpl) appendEntry(ctx context.Context, accountID uuid.UUID, kind domain.EntryKind, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return 0, apperror.ErrNotFound("account")
	}

	var newBalance int64
	switch kind {
	case domain.EntryKindDeposit:
		newBalance = account.Balance + amount
	case domain.EntryKindWithdrawal:
		if amount > account.Balance {
			return 0, apperror.ErrInsufficientFunds()
		}
		newBalance = account.Balance - amount
	default:
		return 0, apperror.InternalError(fmt.Errorf("unsupported entry kind %q", kind))
	}

	if err := s.accountRepo.UpdateBalance(ctx, dbTx, accountID, newBalance); err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.LedgerEntry{
		AccountID:        accountID,
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: newBalance,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("append ledger entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("kind", string(kind)).
		Int64("amount", amount).
		Int64("balance", newBalance).
		Msg("ledger entry appended")

	return newBalance, nil
}
