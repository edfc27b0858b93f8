// Package transfer implements the Anti-Corruption Layer translators for the
// downstream items API's transfer resources.
package transfer

import "github.com/shopspring/decimal"

// TransferDTO matches the downstream Transfer schema. The API reports both
// parties and flags whether the user is the sender.
type TransferDTO struct {
	ID           int64           `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code" validate:"required,iso4217"`
	Description  string          `json:"description"`
	Date         string          `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Sender       string          `json:"sender" validate:"required"`
	Recipient    string          `json:"recipient" validate:"required"`
	IsSender     bool            `json:"is_sender"`
}

// TransferListResponseDTO matches the downstream TransferListResponse schema.
type TransferListResponseDTO struct {
	Transfers []TransferDTO `json:"transfers" validate:"dive"`
}
