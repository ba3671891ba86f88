package service

import (
	"context"
	"errors"
	"testing"

	"banking-ledger/internal/core/domain"
	"banking-ledger/internal/core/ports"
	"banking-ledger/internal/core/ports/mocks"
	"banking-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc         *AccountServiceImpl
	accountRepo *mocks.MockAccountRepository
	ledgerRepo  *mocks.MockLedgerRepository
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAccountService(d.accountRepo, d.ledgerRepo, d.transactor, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// failingCommitTx simulates a commit failure.
type failingCommitTx struct{ pgx.Tx }

func (m *failingCommitTx) Rollback(_ context.Context) error { return nil }
func (m *failingCommitTx) Commit(_ context.Context) error   { return errors.New("connection reset") }

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// ==================== CreateAccount Tests ====================

func TestAccountService_CreateAccount_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	var entry *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			entry = e
			return nil
		})

	account, err := d.svc.CreateAccount(ctx, ports.CreateAccountRequest{
		Name:           "Alice",
		InitialDeposit: 10000,
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, int64(10000), account.Balance)
	assert.NotEqual(t, uuid.Nil, account.ID)

	require.NotNil(t, entry)
	assert.Equal(t, account.ID, entry.AccountID)
	assert.Equal(t, domain.EntryKindDeposit, entry.Kind)
	assert.Equal(t, int64(10000), entry.Amount)
	assert.Equal(t, int64(10000), entry.ResultingBalance)
	assert.Nil(t, entry.CounterpartyID)
}

func TestAccountService_CreateAccount_ZeroDepositStillRecorded(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	var entry *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			entry = e
			return nil
		})

	account, err := d.svc.CreateAccount(ctx, ports.CreateAccountRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)

	require.NotNil(t, entry, "empty opening balance must still produce a deposit entry")
	assert.Equal(t, int64(0), entry.Amount)
	assert.Equal(t, int64(0), entry.ResultingBalance)
}

func TestAccountService_CreateAccount_NegativeDeposit(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	account, err := d.svc.CreateAccount(context.Background(), ports.CreateAccountRequest{
		Name:           "Eve",
		InitialDeposit: -1,
	})
	assert.Nil(t, account)
	assertAppError(t, err, "LED_001")
}

func TestAccountService_CreateAccount_CommitFailure(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &failingCommitTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	account, err := d.svc.CreateAccount(ctx, ports.CreateAccountRequest{Name: "X", InitialDeposit: 5})
	assert.Nil(t, account)
	assertAppError(t, err, "SYS_001")
}

// ==================== Deposit Tests ====================

func TestAccountService_Deposit_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(&domain.Account{
		ID:      accountID,
		Balance: 1000,
	}, nil)
	d.accountRepo.EXPECT().UpdateBalance(ctx, tx, accountID, int64(1500)).Return(nil)

	var entry *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			entry = e
			return nil
		})

	balance, err := d.svc.Deposit(ctx, accountID, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance)

	require.NotNil(t, entry)
	assert.Equal(t, domain.EntryKindDeposit, entry.Kind)
	assert.Equal(t, int64(500), entry.Amount)
	assert.Equal(t, int64(1500), entry.ResultingBalance)
}

func TestAccountService_Deposit_InvalidAmount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	for _, amount := range []int64{0, -100} {
		balance, err := d.svc.Deposit(context.Background(), uuid.New(), amount)
		assert.Zero(t, balance)
		assertAppError(t, err, "LED_001")
	}
}

func TestAccountService_Deposit_AccountNotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(nil, nil)

	_, err := d.svc.Deposit(ctx, accountID, 100)
	assertAppError(t, err, "LED_003")
}

// ==================== Withdraw Tests ====================

func TestAccountService_Withdraw_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(&domain.Account{
		ID:      accountID,
		Balance: 1000,
	}, nil)
	d.accountRepo.EXPECT().UpdateBalance(ctx, tx, accountID, int64(400)).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	balance, err := d.svc.Withdraw(ctx, accountID, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance)
}

func TestAccountService_Withdraw_InsufficientFunds(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(&domain.Account{
		ID:      accountID,
		Balance: 10,
	}, nil)
	// No UpdateBalance or Append expectations: the unit aborts with no writes.

	balance, err := d.svc.Withdraw(ctx, accountID, 999)
	assert.Zero(t, balance)
	assertAppError(t, err, "LED_002")
}

func TestAccountService_Withdraw_ExactBalance(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(&domain.Account{
		ID:      accountID,
		Balance: 250,
	}, nil)
	d.accountRepo.EXPECT().UpdateBalance(ctx, tx, accountID, int64(0)).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	balance, err := d.svc.Withdraw(ctx, accountID, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestAccountService_Withdraw_AppendFailureAborts(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.accountRepo.EXPECT().GetByIDForUpdate(ctx, tx, accountID).Return(&domain.Account{
		ID:      accountID,
		Balance: 1000,
	}, nil)
	d.accountRepo.EXPECT().UpdateBalance(ctx, tx, accountID, int64(900)).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.Withdraw(ctx, accountID, 100)
	assertAppError(t, err, "SYS_001")
}
