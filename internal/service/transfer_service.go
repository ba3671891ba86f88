package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"banking-ledger/internal/core/domain"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// TransferServiceImpl implements ports.TransferService. A transfer debits
// the source, credits the destination, and appends both transfer legs inside
// one database transaction: either every effect commits or none do.
type TransferServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Transfer moves funds between two accounts with pessimistic locking.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	// Both rejections happen before any store access.
	if req.SourceID == req.DestID {
		return nil, apperror.ErrInvalidTransfer()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock both rows in ascending id order so opposing transfers on the same
	// pair cannot deadlock.
	firstID, secondID := req.SourceID, req.DestID
	if bytes.Compare(secondID[:], firstID[:]) < 0 {
		firstID, secondID = secondID, firstID
	}

	first, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, firstID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("lock account: %w", err))
	}
	second, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, secondID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("lock account: %w", err))
	}

	source, dest := first, second
	if firstID != req.SourceID {
		source, dest = second, first
	}
	if source == nil {
		return nil, apperror.ErrNotFound("source account")
	}
	if dest == nil {
		return nil, apperror.ErrNotFound("destination account")
	}

	if req.Amount > source.Balance {
		return nil, apperror.ErrInsufficientFunds()
	}

	newSourceBalance := source.Balance - req.Amount
	newDestBalance := dest.Balance + req.Amount

	if err := s.accountRepo.UpdateBalance(ctx, dbTx, source.ID, newSourceBalance); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("debit source: %w", err))
	}
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, dest.ID, newDestBalance); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("credit destination: %w", err))
	}

	now := time.Now().UTC()
	outLeg := &domain.LedgerEntry{
		AccountID:        source.ID,
		Kind:             domain.EntryKindTransferOut,
		Amount:           req.Amount,
		CounterpartyID:   &dest.ID,
		ResultingBalance: newSourceBalance,
		CreatedAt:        now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, outLeg); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("append transfer_out: %w", err))
	}

	inLeg := &domain.LedgerEntry{
		AccountID:        dest.ID,
		Kind:             domain.EntryKindTransferIn,
		Amount:           req.Amount,
		CounterpartyID:   &source.ID,
		ResultingBalance: newDestBalance,
		CreatedAt:        now,
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, inLeg); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("append transfer_in: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("source_id", source.ID.String()).
		Str("dest_id", dest.ID.String()).
		Int64("amount", req.Amount).
		Msg("transfer committed")

	return &ports.TransferResult{
		SourceBalance: newSourceBalance,
		DestBalance:   newDestBalance,
	}, nil
}
