package model

// Category ピンのカテゴリ
type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"categoryId"`
	Name string `gorm:"type:varchar(30);not null;unique" json:"name"`
}

// TableName Category構造体のテーブル名
func (*Category) TableName() string {
	return "categories"
}

// CategoryRanking カテゴリ別ピン数
type CategoryRanking struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	PinCount   int    `json:"pinCount"`
}
