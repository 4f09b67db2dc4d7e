package model

import "time"

// Pin ピン構造体
type Pin struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"pinId"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Address    string    `gorm:"type:varchar(255);not null;default:''" json:"address"`
	CategoryID int       `gorm:"not null;index" json:"categoryId"`
	EmotionID  int       `gorm:"not null;index" json:"emotionId"`
	GroupID    int       `gorm:"not null;index:idx_pins_group_id_created_at,priority:1" json:"groupId"`
	CreatedAt  time.Time `gorm:"precision:6;index:idx_pins_group_id_created_at,priority:2" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"precision:6" json:"updatedAt"`

	Group    *Group    `gorm:"constraint:pins_group_id_groups_id_foreign,OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category *Category `gorm:"constraint:pins_category_id_categories_id_foreign,OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Emotion  *Emotion  `gorm:"constraint:pins_emotion_id_emotions_id_foreign,OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// TableName Pin構造体のテーブル名
func (*Pin) TableName() string {
	return "pins"
}

// GroupPin グループのピン一覧の要素
type GroupPin struct {
	PinID      int    `json:"pinId"`
	UserName   string `json:"userName"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	CategoryID int    `json:"categoryId"`
	EmotionID  int    `json:"emotionId"`
	GroupName  string `json:"groupName"`
}

// PinRetentionYears 集計・一覧の対象となるピンの作成日時の範囲
const PinRetentionYears = 3
