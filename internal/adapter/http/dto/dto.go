package dto

// CreateAccountRequest is the request body for account creation.
// InitialDeposit is validated by the service so a negative value maps to the
// domain error rather than a generic binding failure.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	InitialDeposit int64  `json:"initial_deposit"`
}

// AmountRequest is the request body for deposits and withdrawals.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// TransferRequest is the request body for fund transfers.
type TransferRequest struct {
	SourceAccountID      string `json:"source_account_id" binding:"required,uuid"`
	DestinationAccountID string `json:"destination_account_id" binding:"required,uuid"`
	Amount               int64  `json:"amount"`
}

// AccountResponse is the response body for account creation and lookup.
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Balance   int64  `json:"balance"`
	CreatedAt string `json:"created_at"`
}

// BalanceResponse is the response body for deposit and withdrawal results.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// TransferResponse is the response body for a completed transfer.
type TransferResponse struct {
	SourceAccountID      string `json:"source_account_id"`
	DestinationAccountID string `json:"destination_account_id"`
	Amount               int64  `json:"amount"`
	SourceBalance        int64  `json:"source_balance"`
	DestinationBalance   int64  `json:"destination_balance"`
}

// LedgerEntryResponse is one row of an account's transaction history.
type LedgerEntryResponse struct {
	ID               int64   `json:"id"`
	Kind             string  `json:"kind"`
	Amount           int64   `json:"amount"`
	CounterpartyID   *string `json:"counterparty_id,omitempty"`
	ResultingBalance int64   `json:"resulting_balance"`
	CreatedAt        string  `json:"created_at"`
}

// HistoryResponse wraps an account's ordered ledger entries.
type HistoryResponse struct {
	AccountID string                `json:"account_id"`
	Entries   []LedgerEntryResponse `json:"entries"`
}

// PolicyResponse is one matched handbook policy.
type PolicyResponse struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// PolicySearchResponse wraps policy search results.
type PolicySearchResponse struct {
	Query   string           `json:"query"`
	Results []PolicyResponse `json:"results"`
}
