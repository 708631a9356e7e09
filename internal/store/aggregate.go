package store

import "calfinance/internal/core/domain"

// AllTransactions concatenates the transactions of cards, card-major.
func AllTransactions(cards []domain.Card) []domain.Transaction {
	n := 0
	for _, c := range cards {
		n += len(c.Transactions)
	}
	out := make([]domain.Transaction, 0, n)
	for _, c := range cards {
		out = append(out, c.Transactions...)
	}
	return out
}

// TotalBalance sums card balances. The empty set sums to 0.
func TotalBalance(cards []domain.Card) int64 {
	var total int64
	for _, c := range cards {
		total += c.Balance
	}
	return total
}

// PartitionByBalanceSign splits cards into strictly positive and strictly negative
// balances, keeping input order.
func PartitionByBalanceSign(cards []domain.Card) domain.CardBalances {
	out := domain.CardBalances{
		Positive: []domain.Card{},
		Negative: []domain.Card{},
	}
	for _, c := range cards {
		switch {
		case c.Balance > 0:
			out.Positive = append(out.Positive, c.Clone())
		case c.Balance < 0:
			out.Negative = append(out.Negative, c.Clone())
		}
	}
	return out
}

// Filter returns the cards that match f. Unknown filters behave like BalanceFilterAll.
func Filter(cards []domain.Card, f domain.BalanceFilter) []domain.Card {
	switch f {
	case domain.BalanceFilterPositive:
		return PartitionByBalanceSign(cards).Positive
	case domain.BalanceFilterNegative:
		return PartitionByBalanceSign(cards).Negative
	default:
		return cloneAll(cards)
	}
}
