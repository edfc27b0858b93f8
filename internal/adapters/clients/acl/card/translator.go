package card

import "github.com/jsamuelsen11/go-item-loader/internal/domain/item"

// ToDomainCards converts a downstream card list to domain cards.
func ToDomainCards(dto CardListResponseDTO) []item.Card {
	cards := make([]item.Card, len(dto.Cards))
	for i, c := range dto.Cards {
		cards[i] = item.Card{Number: c.Number, Holder: c.Holder}
	}
	return cards
}
