package model

// Emotion ピンに付ける感情
type Emotion struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"emotionId"`
	Name string `gorm:"type:varchar(30);not null;unique" json:"name"`
}

// TableName Emotion構造体のテーブル名
func (*Emotion) TableName() string {
	return "emotions"
}
