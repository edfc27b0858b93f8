package item

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a money movement between the user and a counterparty.
// Outgoing is true when the user sent the money.
type Transfer struct {
	Amount       decimal.Decimal
	CurrencyCode string
	Description  string
	Date         time.Time
	Counterparty string
	Outgoing     bool
}

// Direction selects which side of a transfer a list shows.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// IsValid returns true if the direction is one of the defined constants.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionSent, DirectionReceived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

// Matches reports whether t belongs to the direction: outgoing transfers are
// sent, everything else is received.
func (d Direction) Matches(t Transfer) bool {
	if d == DirectionSent {
		return t.Outgoing
	}
	return !t.Outgoing
}
