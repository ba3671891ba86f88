package handler

import (
	"context"
	"time"

	"banking-ledger/internal/adapter/http/dto"
	"banking-ledger/internal/core/domain"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"
	"banking-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountSvc   ports.AccountService
	reportingSvc ports.ReportingService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService, reportingSvc ports.ReportingService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, reportingSvc: reportingSvc}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), ports.CreateAccountRequest{
		Name:           req.Name,
		InitialDeposit: req.InitialDeposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAccountResponse(account))
}

// Get handles GET /api/v1/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, err := h.reportingSvc.GetBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAccountResponse(account))
}

// Deposit handles POST /api/v1/accounts/:id/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.mutateBalance(c, h.accountSvc.Deposit)
}

// Withdraw handles POST /api/v1/accounts/:id/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.mutateBalance(c, h.accountSvc.Withdraw)
}

// History handles GET /api/v1/accounts/:id/history.
func (h *AccountHandler) History(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.reportingSvc.GetHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLedgerEntryResponse(e))
	}

	response.OK(c, dto.HistoryResponse{
		AccountID: id.String(),
		Entries:   out,
	})
}

func (h *AccountHandler) mutateBalance(
	c *gin.Context,
	op func(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error),
) {
	id, err := parseAccountID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := op(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   balance,
	})
}

func parseAccountID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid account id")
	}
	return id, nil
}

func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toLedgerEntryResponse(e domain.LedgerEntry) dto.LedgerEntryResponse {
	out := dto.LedgerEntryResponse{
		ID:               e.ID,
		Kind:             string(e.Kind),
		Amount:           e.Amount,
		ResultingBalance: e.ResultingBalance,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.CounterpartyID != nil {
		s := e.CounterpartyID.String()
		out.CounterpartyID = &s
	}
	return out
}
