// Package friend implements the Anti-Corruption Layer translators for the
// downstream items API's friend resources.
package friend

// FriendDTO matches the downstream Friend schema.
type FriendDTO struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// FriendListResponseDTO matches the downstream FriendListResponse schema.
type FriendListResponseDTO struct {
	Friends []FriendDTO `json:"friends" validate:"dive"`
}
