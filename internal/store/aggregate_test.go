package store

import (
	"testing"

	"calfinance/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestTotalBalance(t *testing.T) {
	c1, c2, c3 := card("A", -100), card("B", 50), card("C", 200)

	assert.Equal(t, int64(0), TotalBalance(nil))
	assert.Equal(t, int64(0), TotalBalance([]domain.Card{}))
	assert.Equal(t, int64(50), TotalBalance([]domain.Card{c2}))
	assert.Equal(t, int64(150), TotalBalance([]domain.Card{c1, c2, c3}))
	assert.Equal(t, int64(150), New([]domain.Card{c1, c2, c3}).TotalBalance())
}

func TestTotalBalance_Additive(t *testing.T) {
	all := []domain.Card{card("A", -7), card("B", 13), card("C", 0), card("D", 9000), card("E", -10000)}
	for split := 0; split <= len(all); split++ {
		left, right := all[:split], all[split:]
		assert.Equal(t, TotalBalance(all), TotalBalance(left)+TotalBalance(right), "split at %d", split)
	}
}

func TestPartitionByBalanceSign(t *testing.T) {
	cards := []domain.Card{
		card("P1", 10),
		card("Z1", 0),
		card("N1", -5),
		card("P2", 1),
		card("N2", -10000),
		card("Z2", 0),
	}

	got := PartitionByBalanceSign(cards)

	assert.Equal(t, []string{"P1", "P2"}, numbers(got.Positive))
	assert.Equal(t, []string{"N1", "N2"}, numbers(got.Negative))
	assert.Equal(t, 4, len(got.Positive)+len(got.Negative))
}

func TestPartitionByBalanceSign_Empty(t *testing.T) {
	got := PartitionByBalanceSign(nil)
	assert.NotNil(t, got.Positive)
	assert.NotNil(t, got.Negative)
	assert.Empty(t, got.Positive)
	assert.Empty(t, got.Negative)
}

func TestStoreBalances(t *testing.T) {
	s := New([]domain.Card{card("P", 1), card("N", -1), card("Z", 0)})
	b := s.Balances()
	assert.Equal(t, []string{"P"}, numbers(b.Positive))
	assert.Equal(t, []string{"N"}, numbers(b.Negative))
}

func TestFilter(t *testing.T) {
	cards := []domain.Card{card("P", 3), card("Z", 0), card("N", -3)}

	tests := []struct {
		filter domain.BalanceFilter
		want   []string
	}{
		{domain.BalanceFilterAll, []string{"P", "Z", "N"}},
		{domain.BalanceFilterPositive, []string{"P"}},
		{domain.BalanceFilterNegative, []string{"N"}},
		{domain.BalanceFilter("bogus"), []string{"P", "Z", "N"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(Filter(cards, tt.filter)))
		})
	}
}
