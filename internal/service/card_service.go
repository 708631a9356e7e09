package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"calfinance/internal/cardnumber"
	"calfinance/internal/core/domain"
	"calfinance/internal/core/ports"
	"calfinance/internal/store"
	"calfinance/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxResetCount caps how many cards a single Reset may create.
const MaxResetCount = 1000

// CardServiceImpl implements ports.CardService over one CardStore.
// The store, the factory and the number generator are single-owner, so every
// call holds mu.
type CardServiceImpl struct {
	mu      sync.Mutex
	store   *store.CardStore
	factory ports.CardFactory
	numbers ports.CardNumberGenerator
	log     zerolog.Logger
}

// NewCardService creates a service and starts logging store changes.
func NewCardService(
	st *store.CardStore,
	factory ports.CardFactory,
	numbers ports.CardNumberGenerator,
	log zerolog.Logger,
) *CardServiceImpl {
	s := &CardServiceImpl{
		store:   st,
		factory: factory,
		numbers: numbers,
		log:     log,
	}
	st.Subscribe(s.logChange)
	return s
}

func (s *CardServiceImpl) logChange(ev store.ChangeEvent) {
	e := s.log.Info().Str("change", string(ev.Kind)).Int("cards", ev.Count)
	if ev.Kind != store.ChangeReplaced {
		e = e.Str("card_id", ev.Card.ID.String()).Str("card_number", cardnumber.Mask(ev.Card.CardNumber))
	}
	e.Msg("card store changed")
}

// ListCards returns the cards matching filter with their count and total balance.
func (s *CardServiceImpl) ListCards(ctx context.Context, filter domain.BalanceFilter) (*ports.CardListing, error) {
	if filter == "" {
		filter = domain.BalanceFilterAll
	}
	if !filter.IsValid() {
		return nil, apperror.ErrInvalidFilter(string(filter))
	}

	s.mu.Lock()
	cards := store.Filter(s.store.Cards(), filter)
	s.mu.Unlock()

	return &ports.CardListing{
		Filter:       filter,
		Cards:        cards,
		Count:        len(cards),
		TotalBalance: store.TotalBalance(cards),
	}, nil
}

// GetCard returns one card by ID.
func (s *CardServiceImpl) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.store.Get(id)
	if !ok {
		return nil, apperror.ErrCardNotFound()
	}
	return &card, nil
}

// AddCard puts a new card with zero balance and no transactions at the front.
func (s *CardServiceImpl) AddCard(ctx context.Context, req ports.AddCardRequest) (*domain.Card, error) {
	owner := strings.Join(strings.Fields(req.OwnerName), " ")
	if owner == "" {
		return nil, apperror.Validation("owner name is required")
	}
	number := strings.TrimSpace(req.CardNumber)
	if number != "" && !cardnumber.IsDigits(number) {
		return nil, apperror.ErrInvalidCardNumber(cardnumber.ErrNotDigits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if number == "" {
		number = s.numbers.Generate()
	}
	card := domain.Card{
		ID:           uuid.New(),
		CardNumber:   number,
		OwnerName:    owner,
		Balance:      0,
		Transactions: []domain.Transaction{},
	}
	s.store.AddCard(card)
	return &card, nil
}

// GenerateCardNumber draws a number without storing anything.
func (s *CardServiceImpl) GenerateCardNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.numbers.Generate(), nil
}

// RemoveCard deletes a card by ID. Unlike CardStore.RemoveCard, a missing
// card is reported as CARD_001.
func (s *CardServiceImpl) RemoveCard(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.RemoveByID(id) {
		return apperror.ErrCardNotFound()
	}
	return nil
}

// Transactions returns every card's transactions, card-major.
func (s *CardServiceImpl) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AllTransactions(), nil
}

// Balances returns the balance-sign partition with per-side totals.
func (s *CardServiceImpl) Balances(ctx context.Context) (*ports.BalanceSummary, error) {
	s.mu.Lock()
	b := s.store.Balances()
	s.mu.Unlock()

	return &ports.BalanceSummary{
		CardBalances:  b,
		PositiveTotal: store.TotalBalance(b.Positive),
		NegativeTotal: store.TotalBalance(b.Negative),
	}, nil
}

// Reset replaces the wallet with count fresh random cards.
func (s *CardServiceImpl) Reset(ctx context.Context, count int) (int, error) {
	if count < 0 || count > MaxResetCount {
		return 0, apperror.ErrInvalidCount(MaxResetCount)
	}
	if err := ctx.Err(); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("reset cancelled: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Replace(s.factory.GenerateCards(count))
	return s.store.Len(), nil
}

// Count returns how many cards the wallet holds.
func (s *CardServiceImpl) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}
