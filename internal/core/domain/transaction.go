package domain

import "time"

// TransactionType represents the kind of balance-affecting event.
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypePurchase TransactionType = "purchase"
)

// TransactionTypes lists the closed set of transaction types in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeTransfer,
	TransactionTypeDeposit,
	TransactionTypePurchase,
}

// IsValid reports whether t belongs to the closed enumeration.
func (t TransactionType) IsValid() bool {
	_, ok := transactionStyles[t]
	return ok
}

// Transaction is a single event on a card. The card owns it; AssociatedCardNumber
// is a lookup key back to that card, not an ownership edge.
type Transaction struct {
	Type                 TransactionType `json:"type"`
	ChangeAmount         int64           `json:"change_amount"` // sign gives direction
	Date                 time.Time       `json:"date"`
	AssociatedCardNumber string          `json:"associated_card_number"`
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.ChangeAmount == o.ChangeAmount &&
		t.Date.Equal(o.Date) &&
		t.AssociatedCardNumber == o.AssociatedCardNumber
}
