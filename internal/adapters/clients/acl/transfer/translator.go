package transfer

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
)

// ToDomainTransfer converts a downstream transfer to a domain Transfer. The
// counterparty is the recipient when the user sent the money and the
// sender otherwise.
func ToDomainTransfer(dto *TransferDTO) (item.Transfer, error) {
	date, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		return item.Transfer{}, fmt.Errorf("transfer %d date %q: %w", dto.ID, dto.Date, domain.ErrMalformed)
	}

	counterparty := dto.Sender
	if dto.IsSender {
		counterparty = dto.Recipient
	}

	return item.Transfer{
		Amount:       dto.Amount,
		CurrencyCode: dto.CurrencyCode,
		Description:  dto.Description,
		Date:         date,
		Counterparty: counterparty,
		Outgoing:     dto.IsSender,
	}, nil
}

// ToDomainTransfers converts a downstream transfer list. The first
// untranslatable entry fails the whole batch.
func ToDomainTransfers(dto TransferListResponseDTO) ([]item.Transfer, error) {
	transfers := make([]item.Transfer, len(dto.Transfers))
	for i := range dto.Transfers {
		t, err := ToDomainTransfer(&dto.Transfers[i])
		if err != nil {
			return nil, err
		}
		transfers[i] = t
	}
	return transfers, nil
}
