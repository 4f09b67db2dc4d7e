package model

import "time"

// Group ピングループ構造体
type Group struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"groupId"`
	UserID    int       `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"type:varchar(30);not null" json:"name"`
	IsDefault bool      `gorm:"type:boolean;not null;default:false" json:"isDefault"`
	CreatedAt time.Time `gorm:"precision:6" json:"createdAt"`
	UpdatedAt time.Time `gorm:"precision:6" json:"updatedAt"`

	User *User `gorm:"constraint:groups_user_id_users_id_foreign,OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName Group構造体のテーブル名
func (*Group) TableName() string {
	return "groups"
}

// GroupSummary グループ一覧の要素
type GroupSummary struct {
	GroupID int    `json:"groupId"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}
