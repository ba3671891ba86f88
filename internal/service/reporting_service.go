package service

import (
	"context"
	"fmt"

	"banking-ledger/internal/core/domain"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// ReportingServiceImpl implements ports.ReportingService. Reads run outside
// any transaction and only ever see committed state.
type ReportingServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(accountRepo ports.AccountRepository, ledgerRepo ports.LedgerRepository) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// GetBalance returns the current account snapshot.
func (s *ReportingServiceImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	return account, nil
}

// GetHistory returns the account's ledger entries oldest first.
func (s *ReportingServiceImpl) GetHistory(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	entries, err := s.ledgerRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("list entries: %w", err))
	}
	return entries, nil
}
