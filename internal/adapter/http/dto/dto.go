package dto

import (
	"time"

	"calfinance/internal/cardnumber"
	"calfinance/internal/core/domain"
	"calfinance/internal/core/ports"
)

// AddCardRequest is the request body for adding a card.
// An empty CardNumber asks the server to generate one.
type AddCardRequest struct {
	OwnerName  string `json:"owner_name" binding:"required,max=100,owner_name"`
	CardNumber string `json:"card_number,omitempty" binding:"omitempty,card_number"`
}

// TransactionResponse is one transaction with its display style.
type TransactionResponse struct {
	Type                 string    `json:"type"`
	Label                string    `json:"label"`
	Color                string    `json:"color"`
	Icon                 string    `json:"icon"`
	ChangeAmount         int64     `json:"change_amount"`
	FormattedAmount      string    `json:"formatted_amount"`
	Date                 time.Time `json:"date"`
	DisplayDate          string    `json:"display_date"`
	AssociatedCardNumber string    `json:"associated_card_number"`
}

// CardResponse is a card as the wallet screen shows it.
type CardResponse struct {
	ID               string                `json:"id"`
	CardNumber       string                `json:"card_number"`
	DisplayNumber    string                `json:"display_number"`
	OwnerName        string                `json:"owner_name"`
	DisplayOwner     string                `json:"display_owner"`
	Balance          int64                 `json:"balance"`
	FormattedBalance string                `json:"formatted_balance"`
	Transactions     []TransactionResponse `json:"transactions"`
}

// CardListResponse wraps a filtered card list with its header figures.
type CardListResponse struct {
	Filter         string         `json:"filter"`
	Count          int            `json:"count"`
	TotalBalance   int64          `json:"total_balance"`
	FormattedTotal string         `json:"formatted_total"`
	Cards          []CardResponse `json:"cards"`
}

// BalancesResponse is the balance-sign partition.
type BalancesResponse struct {
	Positive      []CardResponse `json:"cards_with_positive_balances"`
	Negative      []CardResponse `json:"cards_with_negative_balances"`
	PositiveTotal int64          `json:"positive_total"`
	NegativeTotal int64          `json:"negative_total"`
}

// TransactionListResponse wraps the flattened transaction list.
type TransactionListResponse struct {
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}

// CardNumberResponse carries a freshly generated number.
type CardNumberResponse struct {
	CardNumber    string `json:"card_number"`
	DisplayNumber string `json:"display_number"`
}

// ResetResponse reports how many cards the wallet holds after a reset.
type ResetResponse struct {
	Count int `json:"count"`
}

// NewTransactionResponse maps a domain transaction.
func NewTransactionResponse(tx domain.Transaction) TransactionResponse {
	style := tx.Type.Style()
	return TransactionResponse{
		Type:                 string(tx.Type),
		Label:                style.Label,
		Color:                style.Color,
		Icon:                 style.Icon,
		ChangeAmount:         tx.ChangeAmount,
		FormattedAmount:      domain.FormatAmount(tx.ChangeAmount),
		Date:                 tx.Date,
		DisplayDate:          domain.FormatDate(tx.Date),
		AssociatedCardNumber: tx.AssociatedCardNumber,
	}
}

// NewTransactionResponses maps txs in order; the result is never nil.
func NewTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}

// NewCardResponse maps a domain card.
func NewCardResponse(c domain.Card) CardResponse {
	return CardResponse{
		ID:               c.ID.String(),
		CardNumber:       c.CardNumber,
		DisplayNumber:    cardnumber.Format(c.CardNumber),
		OwnerName:        c.OwnerName,
		DisplayOwner:     domain.DisplayName(c.OwnerName),
		Balance:          c.Balance,
		FormattedBalance: domain.FormatAmount(c.Balance),
		Transactions:     NewTransactionResponses(c.Transactions),
	}
}

// NewCardResponses maps cards in order; the result is never nil.
func NewCardResponses(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCardResponse(c))
	}
	return out
}

// NewCardListResponse maps a service listing.
func NewCardListResponse(l *ports.CardListing) CardListResponse {
	return CardListResponse{
		Filter:         string(l.Filter),
		Count:          l.Count,
		TotalBalance:   l.TotalBalance,
		FormattedTotal: domain.FormatAmount(l.TotalBalance),
		Cards:          NewCardResponses(l.Cards),
	}
}

// NewBalancesResponse maps a balance summary.
func NewBalancesResponse(b *ports.BalanceSummary) BalancesResponse {
	return BalancesResponse{
		Positive:      NewCardResponses(b.Positive),
		Negative:      NewCardResponses(b.Negative),
		PositiveTotal: b.PositiveTotal,
		NegativeTotal: b.NegativeTotal,
	}
}
