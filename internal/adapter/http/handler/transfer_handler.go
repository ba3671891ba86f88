package handler

import (
	"banking-ledger/internal/adapter/http/dto"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"
	"banking-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransferHandler handles fund transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sourceID, err := uuid.Parse(req.SourceAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid source account id"))
		return
	}
	destID, err := uuid.Parse(req.DestinationAccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid destination account id"))
		return
	}

	result, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		SourceID: sourceID,
		DestID:   destID,
		Amount:   req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{
		SourceAccountID:      sourceID.String(),
		DestinationAccountID: destID.String(),
		Amount:               req.Amount,
		SourceBalance:        result.SourceBalance,
		DestinationBalance:   result.DestBalance,
	})
}
