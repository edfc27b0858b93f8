package friend

import "github.com/jsamuelsen11/go-item-loader/internal/domain/item"

// ToDomainFriends converts a downstream friend list to domain friends,
// keeping the downstream order.
func ToDomainFriends(dto FriendListResponseDTO) []item.Friend {
	friends := make([]item.Friend, len(dto.Friends))
	for i, f := range dto.Friends {
		friends[i] = item.Friend{Name: f.Name, Phone: f.Phone}
	}
	return friends
}
