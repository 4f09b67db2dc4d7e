package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/migration"
	"github.com/traPtitech/traPin/repository"
)

var _ repository.Repository = (*Repository)(nil)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	hub    *hub.Hub
	logger *zap.Logger
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、データベースマイグレーションを実行します。
// スキーマが初期化された場合、initはtrueになります。
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger, doMigration bool) (repo repository.Repository, init bool, err error) {
	r := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	if doMigration {
		if init, err = migration.Migrate(db); err != nil {
			return nil, false, err
		}
	}
	return r, init, nil
}
