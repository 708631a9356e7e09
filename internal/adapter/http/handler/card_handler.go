package handler

import (
	"errors"
	"net/http"
	"strconv"

	"calfinance/internal/adapter/http/dto"
	"calfinance/internal/cardnumber"
	"calfinance/internal/core/domain"
	"calfinance/internal/core/ports"
	"calfinance/pkg/apperror"
	"calfinance/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CardHandler handles the card wallet endpoints.
type CardHandler struct {
	cardSvc    ports.CardService
	resetCount int
}

// NewCardHandler creates a new CardHandler. resetCount is used when
// POST /cards/reset has no count parameter.
func NewCardHandler(cardSvc ports.CardService, resetCount int) *CardHandler {
	return &CardHandler{cardSvc: cardSvc, resetCount: resetCount}
}

// List handles GET /api/v1/cards?filter=all|positive|negative.
func (h *CardHandler) List(c *gin.Context) {
	filter := domain.BalanceFilter(c.DefaultQuery("filter", string(domain.BalanceFilterAll)))

	listing, err := h.cardSvc.ListCards(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCardListResponse(listing))
}

// Create handles POST /api/v1/cards.
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.AddCardRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	card, err := h.cardSvc.AddCard(c.Request.Context(), ports.AddCardRequest{
		OwnerName:  req.OwnerName,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewCardResponse(*card))
}

// Get handles GET /api/v1/cards/:id.
func (h *CardHandler) Get(c *gin.Context) {
	id, err := cardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	card, err := h.cardSvc.GetCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCardResponse(*card))
}

// Delete handles DELETE /api/v1/cards/:id.
func (h *CardHandler) Delete(c *gin.Context) {
	id, err := cardID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.cardSvc.RemoveCard(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GenerateNumber handles POST /api/v1/cards/number.
func (h *CardHandler) GenerateNumber(c *gin.Context) {
	number, err := h.cardSvc.GenerateCardNumber(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CardNumberResponse{
		CardNumber:    number,
		DisplayNumber: cardnumber.Format(number),
	})
}

// Balances handles GET /api/v1/cards/balances.
func (h *CardHandler) Balances(c *gin.Context) {
	summary, err := h.cardSvc.Balances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBalancesResponse(summary))
}

// Reset handles POST /api/v1/cards/reset?count=N.
func (h *CardHandler) Reset(c *gin.Context) {
	count := h.resetCount
	if raw, ok := c.GetQuery("count"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("count must be an integer"))
			return
		}
		count = n
	}

	n, err := h.cardSvc.Reset(c.Request.Context(), count)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ResetResponse{Count: n})
}

func cardID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidID(raw)
	}
	return id, nil
}

// bindJSON binds and sanitizes a request body, mapping failures to AppErrors.
func bindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.ErrBodyTooLarge(tooLarge.Limit)
		}
		return apperror.Validation(err.Error())
	}
	dto.SanitizeStruct(v)
	return nil
}
