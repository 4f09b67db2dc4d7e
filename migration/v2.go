package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v2 groupsテーブルにis_defaultを追加し、各ユーザーの最古のグループをデフォルトにする
func v2() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "2",
		Migrate: func(db *gorm.DB) error {
			if err := db.Migrator().AddColumn(&v2Group{}, "IsDefault"); err != nil {
				return err
			}
			return db.Exec("UPDATE `groups` g JOIN (SELECT user_id, MIN(id) AS id FROM `groups` GROUP BY user_id) d ON g.id = d.id SET g.is_default = TRUE").Error
		},
		Rollback: func(db *gorm.DB) error {
			return db.Migrator().DropColumn(&v2Group{}, "IsDefault")
		},
	}
}

type v2Group struct {
	ID        int  `gorm:"primaryKey;autoIncrement"`
	IsDefault bool `gorm:"type:boolean;not null;default:false"`
}

func (*v2Group) TableName() string {
	return "groups"
}
