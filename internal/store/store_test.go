package store

import (
	"testing"
	"time"

	"calfinance/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(number string, balance int64, txAmounts ...int64) domain.Card {
	c := domain.Card{
		ID:         uuid.New(),
		CardNumber: number,
		OwnerName:  "Lily Harris",
		Balance:    balance,
	}
	for i, a := range txAmounts {
		c.Transactions = append(c.Transactions, domain.Transaction{
			Type:                 domain.TransactionTypes[i%len(domain.TransactionTypes)],
			ChangeAmount:         a,
			Date:                 time.Date(2023, 5, 1+i, 0, 0, 0, 0, time.UTC),
			AssociatedCardNumber: number,
		})
	}
	return c
}

func numbers(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.CardNumber
	}
	return out
}

func TestAddCard_InsertsAtFront(t *testing.T) {
	a, b, x := card("A", 1), card("B", 2), card("X", 3)
	s := New([]domain.Card{a, b})

	s.AddCard(x)

	assert.Equal(t, []string{"X", "A", "B"}, numbers(s.Cards()))
}

func TestRemoveCard(t *testing.T) {
	a, b, c := card("A", 1), card("B", 2), card("C", 3)

	t.Run("present", func(t *testing.T) {
		s := New([]domain.Card{a, b, c})
		s.RemoveCard(b)
		assert.Equal(t, []string{"A", "C"}, numbers(s.Cards()))
	})

	t.Run("absent is no-op", func(t *testing.T) {
		s := New([]domain.Card{a, b, c})
		s.RemoveCard(card("Z", 0))
		assert.Equal(t, []string{"A", "B", "C"}, numbers(s.Cards()))
	})

	t.Run("same id but changed value is absent", func(t *testing.T) {
		s := New([]domain.Card{a, b, c})
		changed := b.Clone()
		changed.Balance++
		s.RemoveCard(changed)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("removes only first of duplicates", func(t *testing.T) {
		s := New([]domain.Card{a, b, b, c})
		s.RemoveCard(b)
		assert.Equal(t, []string{"A", "B", "C"}, numbers(s.Cards()))
	})
}

func TestRemoveByID(t *testing.T) {
	a, b := card("A", 1), card("B", 2)
	s := New([]domain.Card{a, b})

	assert.True(t, s.RemoveByID(a.ID))
	assert.False(t, s.RemoveByID(a.ID))
	assert.False(t, s.RemoveByID(uuid.New()))
	assert.Equal(t, []string{"B"}, numbers(s.Cards()))
}

func TestGet(t *testing.T) {
	a := card("A", 1, 10)
	s := New([]domain.Card{a})

	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.True(t, got.Equal(a))

	_, ok = s.Get(uuid.New())
	assert.False(t, ok)
}

func TestCards_IsSnapshot(t *testing.T) {
	a := card("A", 1, 10)
	s := New([]domain.Card{a})

	snap := s.Cards()
	snap[0].Balance = 999
	snap[0].Transactions[0].ChangeAmount = 999

	fresh := s.Cards()
	assert.Equal(t, int64(1), fresh[0].Balance)
	assert.Equal(t, int64(10), fresh[0].Transactions[0].ChangeAmount)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.Card{card("A", 1)}
	s := New(in)
	in[0].CardNumber = "mutated"
	assert.Equal(t, "A", s.Cards()[0].CardNumber)
}

func TestAllTransactions_CardMajorOrder(t *testing.T) {
	s := New([]domain.Card{
		card("A", 0, 1, 2),
		card("B", 0),
		card("C", 0, 3, 4, 5),
	})

	txs := s.AllTransactions()
	require.Len(t, txs, 5)

	var amounts []int64
	var owners []string
	for _, tx := range txs {
		amounts = append(amounts, tx.ChangeAmount)
		owners = append(owners, tx.AssociatedCardNumber)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, amounts)
	assert.Equal(t, []string{"A", "A", "C", "C", "C"}, owners)
}

func TestAllTransactions_ReflectsMutations(t *testing.T) {
	a := card("A", 0, 1)
	s := New([]domain.Card{a})
	assert.Len(t, s.AllTransactions(), 1)

	s.AddCard(card("B", 0, 2, 3))
	assert.Len(t, s.AllTransactions(), 3)
	assert.Equal(t, int64(2), s.AllTransactions()[0].ChangeAmount)

	s.RemoveCard(a)
	assert.Len(t, s.AllTransactions(), 2)

	assert.Empty(t, New(nil).AllTransactions())
}

func TestSubscribe(t *testing.T) {
	a, b := card("A", 1), card("B", 2)
	s := New([]domain.Card{a})

	var events []ChangeEvent
	unsubscribe := s.Subscribe(func(ev ChangeEvent) { events = append(events, ev) })

	s.AddCard(b)
	s.RemoveCard(card("Z", 0)) // no-op, no event
	s.RemoveByID(a.ID)
	s.Replace(nil)

	require.Len(t, events, 3)
	assert.Equal(t, ChangeAdded, events[0].Kind)
	assert.Equal(t, "B", events[0].Card.CardNumber)
	assert.Equal(t, 2, events[0].Count)
	assert.Equal(t, ChangeRemoved, events[1].Kind)
	assert.Equal(t, "A", events[1].Card.CardNumber)
	assert.Equal(t, 1, events[1].Count)
	assert.Equal(t, ChangeReplaced, events[2].Kind)
	assert.Equal(t, 0, events[2].Count)

	unsubscribe()
	s.AddCard(a)
	assert.Len(t, events, 3)
}
