// Package display maps domain items to the human-readable DisplayItem form.
// Every mapper is a pure function: no I/O, no failure, and the selection
// action passed in is bound unchanged to the produced item.
package display

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

// DateStyle selects how transfer dates are rendered in subtitles.
type DateStyle int

const (
	// DateShort renders dates as "1/2/06, 3:04 PM".
	DateShort DateStyle = iota
	// DateLong renders dates as "January 2, 2006 at 3:04 PM".
	DateLong
)

const (
	shortDateLayout = "1/2/06, 3:04 PM"
	longDateLayout  = "January 2, 2006 at 3:04 PM"

	// fallbackScale is used for currency codes x/text does not recognize.
	fallbackScale = 2
)

// Format renders t in the style.
func (s DateStyle) Format(t time.Time) string {
	if s == DateLong {
		return t.Format(longDateLayout)
	}
	return t.Format(shortDateLayout)
}

// Friend maps a friend to (name, phone).
func Friend(f item.Friend, onSelect func()) item.DisplayItem {
	return item.NewDisplayItem(f.Name, f.Phone, onSelect)
}

// Card maps a card to (number, holder).
func Card(c item.Card, onSelect func()) item.DisplayItem {
	return item.NewDisplayItem(c.Number, c.Holder, onSelect)
}

// Transfer maps a transfer to ("<CODE> <amount> • <description>", subtitle).
// Outgoing transfers read "Sent to: <counterparty> on <date>", incoming ones
// "Received from: <counterparty> on <date>".
func Transfer(t item.Transfer, style DateStyle, onSelect func()) item.DisplayItem {
	title := fmt.Sprintf("%s • %s", Amount(t), t.Description)

	label := "Received from"
	if t.Outgoing {
		label = "Sent to"
	}
	subtitle := fmt.Sprintf("%s: %s on %s", label, t.Counterparty, style.Format(t.Date))

	return item.NewDisplayItem(title, subtitle, onSelect)
}

// Amount renders the transfer amount with its ISO currency code, rounded to
// the currency's standard number of decimals (USD 12.50, JPY 1200).
func Amount(t item.Transfer) string {
	code := strings.ToUpper(strings.TrimSpace(t.CurrencyCode))

	scale := fallbackScale
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	return fmt.Sprintf("%s %s", code, t.Amount.StringFixed(int32(scale)))
}
