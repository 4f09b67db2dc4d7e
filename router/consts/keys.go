package consts

const (
	// KeyUserID リクエストユーザーIDキー (optional.Of[int])
	KeyUserID = "userID"
)
