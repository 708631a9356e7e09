package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayDateLayout is the abbreviated date shown next to a transaction.
const DisplayDateLayout = "Jan 2, 2006"

// TransactionStyle is how a transaction type is presented.
type TransactionStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

var transactionStyles = map[TransactionType]TransactionStyle{
	TransactionTypeTransfer: {Color: "green", Icon: "tray.and.arrow.up.fill", Label: "Transfer"},
	TransactionTypeDeposit:  {Color: "gray", Icon: "tray.and.arrow.down.fill", Label: "Deposit"},
	TransactionTypePurchase: {Color: "red", Icon: "dollarsign.square.fill", Label: "Purchase"},
}

// Style returns the presentation for t. Unknown types get an empty style.
func (t TransactionType) Style() TransactionStyle {
	return transactionStyles[t]
}

// FormatAmount renders a signed amount as "+ $N" or "- $N".
func FormatAmount(amount int64) string {
	if amount >= 0 {
		return fmt.Sprintf("+ $%d", amount)
	}
	// -amount overflows for MinInt64; print the magnitude from the string form instead.
	return "- $" + strings.TrimPrefix(fmt.Sprintf("%d", amount), "-")
}

// FormatDate renders d in DisplayDateLayout.
func FormatDate(d time.Time) string {
	return d.Format(DisplayDateLayout)
}

// DisplayName title-cases an owner name for the card face.
// A Caser is stateful, so each call builds its own.
func DisplayName(owner string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(owner), " "))
}
