package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 pinsテーブルへの (group_id, created_at) の複合インデックスの追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			return db.Exec("CREATE INDEX idx_pins_group_id_created_at ON pins (group_id, created_at)").Error
		},
		Rollback: func(db *gorm.DB) error {
			return db.Exec("DROP INDEX idx_pins_group_id_created_at ON pins").Error
		},
	}
}
