// Package store holds the in-memory card collection and its derived views.
//
// A CardStore is owned by one goroutine at a time; it does no locking.
package store

import (
	"calfinance/internal/core/domain"

	"github.com/google/uuid"
)

// ChangeKind tells subscribers what happened to the collection.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeReplaced ChangeKind = "replaced"
)

// ChangeEvent is delivered to subscribers after a mutation. Card is zero for ChangeReplaced.
type ChangeEvent struct {
	Kind  ChangeKind
	Card  domain.Card
	Count int // cards in the store after the change
}

// CardStore owns an ordered collection of cards, most recent first.
type CardStore struct {
	cards     []domain.Card
	observers map[int]func(ChangeEvent)
	nextObsID int
}

// New returns a store holding a copy of cards in the given order.
func New(cards []domain.Card) *CardStore {
	s := &CardStore{observers: make(map[int]func(ChangeEvent))}
	s.cards = cloneAll(cards)
	return s
}

// Cards returns a snapshot of the collection.
func (s *CardStore) Cards() []domain.Card {
	return cloneAll(s.cards)
}

// Len returns the number of cards.
func (s *CardStore) Len() int {
	return len(s.cards)
}

// Get returns the card with id.
func (s *CardStore) Get(id uuid.UUID) (domain.Card, bool) {
	for _, c := range s.cards {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return domain.Card{}, false
}

// AddCard inserts card at the front.
func (s *CardStore) AddCard(card domain.Card) {
	card = card.Clone()
	s.cards = append([]domain.Card{card}, s.cards...)
	s.notify(ChangeEvent{Kind: ChangeAdded, Card: card})
}

// RemoveCard removes the first card equal to card. Absent cards are ignored.
func (s *CardStore) RemoveCard(card domain.Card) {
	for i := range s.cards {
		if s.cards[i].Equal(card) {
			s.removeAt(i)
			return
		}
	}
}

// RemoveByID removes the card with id and reports whether one was found.
func (s *CardStore) RemoveByID(id uuid.UUID) bool {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.removeAt(i)
			return true
		}
	}
	return false
}

func (s *CardStore) removeAt(i int) {
	removed := s.cards[i]
	s.cards = append(s.cards[:i:i], s.cards[i+1:]...)
	s.notify(ChangeEvent{Kind: ChangeRemoved, Card: removed.Clone()})
}

// Replace swaps the whole collection.
func (s *CardStore) Replace(cards []domain.Card) {
	s.cards = cloneAll(cards)
	s.notify(ChangeEvent{Kind: ChangeReplaced})
}

// AllTransactions flattens every card's transactions in card order.
func (s *CardStore) AllTransactions() []domain.Transaction {
	return AllTransactions(s.cards)
}

// TotalBalance sums the balance of every card in the store.
func (s *CardStore) TotalBalance() int64 {
	return TotalBalance(s.cards)
}

// Balances partitions the store's cards by balance sign.
func (s *CardStore) Balances() domain.CardBalances {
	return PartitionByBalanceSign(s.cards)
}

// Subscribe registers fn for change events and returns a function that removes it.
// Observers run synchronously, in no particular order, after the mutation is applied.
func (s *CardStore) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *CardStore) notify(ev ChangeEvent) {
	ev.Count = len(s.cards)
	for _, fn := range s.observers {
		fn(ev)
	}
}

func cloneAll(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
