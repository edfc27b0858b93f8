package display_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/go-item-loader/internal/app/display"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

var transferDate = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func TestFriend(t *testing.T) {
	t.Parallel()

	selected := 0
	d := display.Friend(item.Friend{Name: "Ann", Phone: "555"}, func() { selected++ })

	if d.Title != "Ann" {
		t.Errorf("Title = %q, want %q", d.Title, "Ann")
	}
	if d.Subtitle != "555" {
		t.Errorf("Subtitle = %q, want %q", d.Subtitle, "555")
	}
	d.Select()
	if selected != 1 {
		t.Errorf("selection calls = %d, want 1", selected)
	}
}

func TestCard(t *testing.T) {
	t.Parallel()

	d := display.Card(item.Card{Number: "4111 1111 1111 1111", Holder: "Ann Lee"}, nil)

	if d.Title != "4111 1111 1111 1111" {
		t.Errorf("Title = %q, want card number", d.Title)
	}
	if d.Subtitle != "Ann Lee" {
		t.Errorf("Subtitle = %q, want %q", d.Subtitle, "Ann Lee")
	}
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		transfer     item.Transfer
		style        display.DateStyle
		wantTitle    string
		wantSubtitle string
	}{
		{
			name: "sent with long date",
			transfer: item.Transfer{
				Amount:       decimal.RequireFromString("12.5"),
				CurrencyCode: "USD",
				Description:  "Dinner",
				Date:         transferDate,
				Counterparty: "Bob",
				Outgoing:     true,
			},
			style:        display.DateLong,
			wantTitle:    "USD 12.50 • Dinner",
			wantSubtitle: "Sent to: Bob on March 5, 2024 at 2:30 PM",
		},
		{
			name: "received with short date",
			transfer: item.Transfer{
				Amount:       decimal.RequireFromString("1200"),
				CurrencyCode: "JPY",
				Description:  "Gift",
				Date:         transferDate,
				Counterparty: "Kai",
				Outgoing:     false,
			},
			style:        display.DateShort,
			wantTitle:    "JPY 1200 • Gift",
			wantSubtitle: "Received from: Kai on 3/5/24, 2:30 PM",
		},
		{
			name: "unknown currency falls back to two decimals",
			transfer: item.Transfer{
				Amount:       decimal.RequireFromString("3"),
				CurrencyCode: "xyz",
				Description:  "Tokens",
				Date:         transferDate,
				Counterparty: "Eve",
			},
			style:        display.DateShort,
			wantTitle:    "XYZ 3.00 • Tokens",
			wantSubtitle: "Received from: Eve on 3/5/24, 2:30 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := display.Transfer(tt.transfer, tt.style, nil)
			if d.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", d.Title, tt.wantTitle)
			}
			if d.Subtitle != tt.wantSubtitle {
				t.Errorf("Subtitle = %q, want %q", d.Subtitle, tt.wantSubtitle)
			}
		})
	}
}
