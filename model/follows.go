package model

import "time"

// Follow ユーザーのフォロー関係
type Follow struct {
	FollowerID  int       `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowingID int       `gorm:"primaryKey;autoIncrement:false;index" json:"followingId"`
	CreatedAt   time.Time `gorm:"precision:6" json:"createdAt"`

	Follower  *User `gorm:"constraint:follows_follower_id_users_id_foreign,OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:FollowerID" json:"-"`
	Following *User `gorm:"constraint:follows_following_id_users_id_foreign,OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName Follow構造体のテーブル名
func (*Follow) TableName() string {
	return "follows"
}
