// Package card implements the Anti-Corruption Layer translators for the
// downstream items API's card resources.
package card

// CardDTO matches the downstream Card schema.
type CardDTO struct {
	Number string `json:"number" validate:"required"`
	Holder string `json:"holder" validate:"required"`
}

// CardListResponseDTO matches the downstream CardListResponse schema.
type CardListResponseDTO struct {
	Cards []CardDTO `json:"cards" validate:"dive"`
}
