package handler

import (
	"banking-ledger/internal/adapter/http/dto"
	"banking-ledger/internal/core/ports"
	"banking-ledger/pkg/apperror"
	"banking-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles policy handbook search.
type PolicyHandler struct {
	policySvc ports.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policySvc ports.PolicyService) *PolicyHandler {
	return &PolicyHandler{policySvc: policySvc}
}

// Search handles GET /api/v1/policies?query=...
func (h *PolicyHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, apperror.Validation("query parameter is required"))
		return
	}

	matches := h.policySvc.Search(query)

	out := make([]dto.PolicyResponse, 0, len(matches))
	for _, p := range matches {
		out = append(out, dto.PolicyResponse{Topic: p.Topic, Content: p.Content})
	}

	response.OK(c, dto.PolicySearchResponse{
		Query:   query,
		Results: out,
	})
}
