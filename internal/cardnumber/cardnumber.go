// Package cardnumber generates synthetic MasterCard-style card numbers for demo data.
//
// The check digit is (sum of all preceding digits * 9) mod 10. That is not the
// Luhn algorithm, so generated numbers are not valid payment card numbers.
package cardnumber

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Prefix is the fixed two-digit issuer marker every generated number starts with.
const Prefix = "54"

const groupCount, groupSize = 4, 4

// Layout decides how many random digits sit between the prefix and the check digit.
type Layout int

const (
	// LayoutCorrected draws 13 random digits: 2 + 13 + 1 = 16 digits.
	LayoutCorrected Layout = iota
	// LayoutLegacy draws 12 random digits: 2 + 12 + 1 = 15 digits.
	LayoutLegacy
)

// ParseLayout maps a config value to a Layout. Empty means corrected.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corrected":
		return LayoutCorrected, nil
	case "legacy":
		return LayoutLegacy, nil
	default:
		return 0, fmt.Errorf("unknown card number layout %q", s)
	}
}

// RandomDigits returns the count of random digits drawn for l.
func (l Layout) RandomDigits() int {
	if l == LayoutLegacy {
		return 12
	}
	return 13
}

// Length returns the number of characters a number in layout l has.
func (l Layout) Length() int {
	return len(Prefix) + l.RandomDigits() + 1
}

func (l Layout) String() string {
	if l == LayoutLegacy {
		return "legacy"
	}
	return "corrected"
}

// Generator draws card numbers from a caller-owned random source.
// It is not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	rng    *rand.Rand
	layout Layout
}

// NewGenerator returns a generator using rng for every digit.
func NewGenerator(rng *rand.Rand, layout Layout) *Generator {
	return &Generator{rng: rng, layout: layout}
}

// Layout returns the layout the generator was built with.
func (g *Generator) Layout() Layout {
	return g.layout
}

// Generate returns a new number. Collisions with earlier numbers are possible.
func (g *Generator) Generate() string {
	digits := make([]int, 0, g.layout.Length())
	for i := 0; i < len(Prefix); i++ {
		digits = append(digits, int(Prefix[i]-'0'))
	}
	for i := 0; i < g.layout.RandomDigits(); i++ {
		digits = append(digits, g.rng.IntN(10))
	}
	digits = append(digits, Checksum(digits))
	return render(digits)
}

// Checksum returns (sum(digits) * 9) mod 10.
func Checksum(digits []int) int {
	sum := 0
	for _, d := range digits {
		sum += d
	}
	return sum * 9 % 10
}

// render writes four groups of four digits; a short last group is written as is.
func render(digits []int) string {
	var sb strings.Builder
	sb.Grow(groupCount * groupSize)
	for g := 0; g < groupCount; g++ {
		start := g * groupSize
		if start >= len(digits) {
			break
		}
		end := min(start+groupSize, len(digits))
		for _, d := range digits[start:end] {
			sb.WriteByte(byte('0' + d))
		}
	}
	return sb.String()
}

// Validation errors returned by Validate.
var (
	ErrNotDigits     = errors.New("card number must contain digits only")
	ErrBadLength     = errors.New("card number has an unexpected length")
	ErrBadPrefix     = errors.New("card number must start with " + Prefix)
	ErrBadCheckDigit = errors.New("card number check digit mismatch")
)

// Validate checks that number could have come from a Generator of either layout.
func Validate(number string) error {
	if number == "" || !IsDigits(number) {
		return ErrNotDigits
	}
	if len(number) != LayoutCorrected.Length() && len(number) != LayoutLegacy.Length() {
		return fmt.Errorf("%w: %d", ErrBadLength, len(number))
	}
	if !strings.HasPrefix(number, Prefix) {
		return ErrBadPrefix
	}
	body := make([]int, len(number)-1)
	for i := range body {
		body[i] = int(number[i] - '0')
	}
	if Checksum(body) != int(number[len(number)-1]-'0') {
		return ErrBadCheckDigit
	}
	return nil
}

// IsDigits reports whether s is made of ASCII digits only.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Mask keeps the first six and last four digits, for logs.
func Mask(number string) string {
	n := len(number)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + number[n-4:]
	}
	return number[:6] + strings.Repeat("*", n-10) + number[n-4:]
}

// Format splits number into space-separated groups of four for display.
func Format(number string) string {
	if len(number) <= groupSize {
		return number
	}
	var sb strings.Builder
	sb.Grow(len(number) + len(number)/groupSize)
	for i := 0; i < len(number); i += groupSize {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(number[i:min(i+groupSize, len(number))])
	}
	return sb.String()
}
