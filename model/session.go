package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// SessionRecord GORM用Session構造体
type SessionRecord struct {
	Token       string    `gorm:"type:varchar(50);primaryKey"`
	ReferenceID uuid.UUID `gorm:"type:char(36);unique"`
	UserID      int       `gorm:"not null;default:0;index"`
	Created     time.Time `gorm:"precision:6"`
}

// TableName SessionRecordのテーブル名
func (*SessionRecord) TableName() string {
	return "r_sessions"
}
