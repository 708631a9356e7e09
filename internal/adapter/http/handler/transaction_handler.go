package handler

import (
	"calfinance/internal/adapter/http/dto"
	"calfinance/internal/core/ports"
	"calfinance/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the flattened transaction history.
type TransactionHandler struct {
	cardSvc ports.CardService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(cardSvc ports.CardService) *TransactionHandler {
	return &TransactionHandler{cardSvc: cardSvc}
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.cardSvc.Transactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransactionListResponse{
		Count:        len(txs),
		Transactions: dto.NewTransactionResponses(txs),
	})
}
