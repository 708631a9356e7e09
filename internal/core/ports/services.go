package ports

import (
	"context"

	"calfinance/internal/core/domain"

	"github.com/google/uuid"
)

// CardNumberGenerator produces synthetic card numbers.
type CardNumberGenerator interface {
	Generate() string
}

// CardFactory builds random demo cards.
type CardFactory interface {
	CreateCard() domain.Card
	GenerateCards(count int) []domain.Card
}

// --- Service Ports (Business Logic) ---

// CardService is the card wallet as seen by the presentation layer.
// Every returned value is a snapshot.
type CardService interface {
	ListCards(ctx context.Context, filter domain.BalanceFilter) (*CardListing, error)
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	AddCard(ctx context.Context, req AddCardRequest) (*domain.Card, error)
	GenerateCardNumber(ctx context.Context) (string, error)
	RemoveCard(ctx context.Context, id uuid.UUID) error
	Transactions(ctx context.Context) ([]domain.Transaction, error)
	Balances(ctx context.Context) (*BalanceSummary, error)
	Reset(ctx context.Context, count int) (int, error)
	Count(ctx context.Context) int
}

// AddCardRequest holds the input for adding a card. An empty CardNumber is generated.
type AddCardRequest struct {
	OwnerName  string
	CardNumber string
}

// CardListing is a filtered view of the wallet with its header figures.
type CardListing struct {
	Filter       domain.BalanceFilter
	Cards        []domain.Card
	Count        int
	TotalBalance int64
}

// BalanceSummary is the balance-sign partition with a total for each side.
type BalanceSummary struct {
	domain.CardBalances
	PositiveTotal int64
	NegativeTotal int64
}
