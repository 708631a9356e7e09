package domain

import "github.com/google/uuid"

// Card is a synthetic credit card with its transaction history.
type Card struct {
	ID           uuid.UUID     `json:"id"`
	CardNumber   string        `json:"card_number"`
	OwnerName    string        `json:"owner_name"`
	Balance      int64         `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// Equal reports full value equality, including ID and every transaction in order.
func (c Card) Equal(o Card) bool {
	if c.ID != o.ID ||
		c.CardNumber != o.CardNumber ||
		c.OwnerName != o.OwnerName ||
		c.Balance != o.Balance ||
		len(c.Transactions) != len(o.Transactions) {
		return false
	}
	for i := range c.Transactions {
		if !c.Transactions[i].Equal(o.Transactions[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no transaction storage with c.
func (c Card) Clone() Card {
	cp := c
	if c.Transactions != nil {
		cp.Transactions = make([]Transaction, len(c.Transactions))
		copy(cp.Transactions, c.Transactions)
	}
	return cp
}

// CardBalances splits cards by balance sign. Zero-balance cards are in neither side.
type CardBalances struct {
	Positive []Card `json:"cards_with_positive_balances"`
	Negative []Card `json:"cards_with_negative_balances"`
}

// BalanceFilter selects which cards a listing shows.
type BalanceFilter string

const (
	BalanceFilterAll      BalanceFilter = "all"
	BalanceFilterPositive BalanceFilter = "positive"
	BalanceFilterNegative BalanceFilter = "negative"
)

// IsValid reports whether f is a known filter.
func (f BalanceFilter) IsValid() bool {
	switch f {
	case BalanceFilterAll, BalanceFilterPositive, BalanceFilterNegative:
		return true
	}
	return false
}
