package event

const (
	// UserCreated ユーザーが追加された
	// 	Fields:
	// 		user_id: int
	// 		user: *model.User
	UserCreated = "user.created"

	// GroupCreated グループが作成された
	// 	Fields:
	// 		group_id: int
	// 		group: *model.Group
	GroupCreated = "group.created"
	// GroupDeleted グループが削除された
	// 	Fields:
	// 		group_id: int
	GroupDeleted = "group.deleted"

	// PinCreated ピンが作成された
	// 	Fields:
	// 		pin_id: int
	// 		pin: *model.Pin
	PinCreated = "pin.created"
	// PinUpdated ピンが更新された
	// 	Fields:
	// 		pin_id: int
	PinUpdated = "pin.updated"
	// PinDeleted ピンが削除された
	// 	Fields:
	// 		pin_id: int
	PinDeleted = "pin.deleted"

	// FollowCreated フォローが作成された
	// 	Fields:
	// 		follower_id: int
	// 		following_id: int
	FollowCreated = "follow.created"
	// FollowDeleted フォローが解除された
	// 	Fields:
	// 		follower_id: int
	// 		following_id: int
	FollowDeleted = "follow.deleted"
)
