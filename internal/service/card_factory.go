package service

import (
	"math"
	"math/rand/v2"
	"time"

	"calfinance/internal/core/domain"
	"calfinance/internal/core/ports"

	"github.com/google/uuid"
)

// OwnerNames is the fixed pool random cards draw their owner from.
var OwnerNames = []string{
	"Ethan Johnson",
	"Mia Davis",
	"Benjamin Taylor",
	"Abigail Anderson",
	"Samuel White",
	"Harper Martinez",
	"Jackson Wilson",
	"Lily Harris",
	"Aiden Thomas",
	"Grace Robinson",
	"Lucas Moore",
	"Scarlett Martin",
	"Elijah Clark",
	"Chloe Lewis",
	"Henry Turner",
	"Sofia Baker",
	"Jack Hill",
	"Amelia Mitchell",
	"Oliver Perez",
	"Ava Scott",
}

// FactoryOptions bounds the random values of generated cards.
type FactoryOptions struct {
	MaxTransactions int   // each card gets 1..MaxTransactions transactions
	BalanceBound    int64 // balances and amounts are drawn from [-BalanceBound, BalanceBound]
	HistoryDays     int   // transaction dates fall in [now - HistoryDays, now]
	// LegacyTagging tags transactions with a second, independently generated
	// number instead of the owning card's number.
	LegacyTagging bool
}

const (
	// MaxBalanceBound keeps the width of [-bound, bound] within int64.
	MaxBalanceBound = math.MaxInt64 / 2
	// MaxHistoryDays keeps the history window within a time.Duration.
	MaxHistoryDays = int(math.MaxInt64 / int64(24*time.Hour))
)

// DefaultFactoryOptions returns the demo defaults.
func DefaultFactoryOptions() FactoryOptions {
	return FactoryOptions{
		MaxTransactions: 10,
		BalanceBound:    10000,
		HistoryDays:     10000,
	}
}

// CardFactory implements ports.CardFactory. It shares rng with nothing else
// except the number generator, and is not safe for concurrent use.
type CardFactory struct {
	rng     *rand.Rand
	numbers ports.CardNumberGenerator
	opts    FactoryOptions
	now     func() time.Time
}

// NewCardFactory creates a factory. A nil now uses time.Now. Out-of-range
// options are clamped to [0, MaxBalanceBound] and [0, MaxHistoryDays].
func NewCardFactory(rng *rand.Rand, numbers ports.CardNumberGenerator, opts FactoryOptions, now func() time.Time) *CardFactory {
	if opts.MaxTransactions < 1 {
		opts.MaxTransactions = 1
	}
	opts.BalanceBound = min(max(opts.BalanceBound, 0), MaxBalanceBound)
	opts.HistoryDays = min(max(opts.HistoryDays, 0), MaxHistoryDays)
	if now == nil {
		now = time.Now
	}
	return &CardFactory{rng: rng, numbers: numbers, opts: opts, now: now}
}

// GenerateCards returns count random cards. count <= 0 returns an empty slice.
func (f *CardFactory) GenerateCards(count int) []domain.Card {
	cards := make([]domain.Card, 0, max(count, 0))
	for i := 0; i < count; i++ {
		cards = append(cards, f.CreateCard())
	}
	return cards
}

// CreateCard returns one random card with 1..MaxTransactions transactions.
func (f *CardFactory) CreateCard() domain.Card {
	owner := OwnerNames[f.rng.IntN(len(OwnerNames))]
	balance := f.between(-f.opts.BalanceBound, f.opts.BalanceBound)

	var number, tagged string
	if f.opts.LegacyTagging {
		tagged = f.numbers.Generate()
		number = f.numbers.Generate()
	} else {
		number = f.numbers.Generate()
		tagged = number
	}

	return domain.Card{
		ID:           uuid.New(),
		CardNumber:   number,
		OwnerName:    owner,
		Balance:      balance,
		Transactions: f.transactions(tagged),
	}
}

func (f *CardFactory) transactions(cardNumber string) []domain.Transaction {
	count := 1 + f.rng.IntN(f.opts.MaxTransactions)
	txs := make([]domain.Transaction, count)
	for i := range txs {
		txs[i] = domain.Transaction{
			Type:                 domain.TransactionTypes[f.rng.IntN(len(domain.TransactionTypes))],
			ChangeAmount:         f.between(-f.opts.BalanceBound, f.opts.BalanceBound),
			Date:                 f.date(),
			AssociatedCardNumber: cardNumber,
		}
	}
	return txs
}

// date is uniform over [now - HistoryDays, now], both ends included.
func (f *CardFactory) date() time.Time {
	now := f.now()
	span := int64(f.opts.HistoryDays) * int64(24*time.Hour)
	if span <= 0 {
		return now
	}
	return now.Add(-time.Duration(span)).Add(time.Duration(f.rng.Int64N(span + 1)))
}

// between is uniform over [lo, hi].
func (f *CardFactory) between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Int64N(hi-lo+1)
}
