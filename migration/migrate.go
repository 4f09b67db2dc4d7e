package migration

import (
	"database/sql"
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Migrate データベースマイグレーションを実行します
// 初回実行でスキーマが初期化された場合、initでtrueを返します
func Migrate(db *gorm.DB) (init bool, err error) {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "migrations",
		IDColumnName:              "id",
		IDColumnSize:              190,
		UseTransaction:            false,
		ValidateUnknownMigrations: true,
	}, Migrations())
	m.InitSchema(func(db *gorm.DB) error {
		// 初回のみに呼ばれる
		// 全ての最新のデータベース定義を書く事
		init = true

		// テーブル・外部キー・インデックス
		if err := db.AutoMigrate(AllTables()...); err != nil {
			return err
		}

		// マスターデータ投入
		if err := db.Create(SeedCategories()).Error; err != nil {
			return err
		}
		return db.Create(SeedEmotions()).Error
	})
	err = m.Migrate()
	return
}

// DropAll データベースの全テーブルを削除します
func DropAll(db *gorm.DB) error {
	if err := db.Migrator().DropTable(AllTables()...); err != nil {
		return err
	}
	return db.Migrator().DropTable("migrations")
}

// CreateDatabasesIfNotExists データベースが存在しなければ作成します
//
// dsnはデータベース名を含まないDSNを指定してください
func CreateDatabasesIfNotExists(dialect, dsn, prefix string, names ...string) error {
	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	for _, v := range names {
		_, err = conn.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s%s`", prefix, v))
		if err != nil {
			return err
		}
	}
	return nil
}

// DatabaseDSN MariaDB接続用のDSNを生成します
//
// databaseが空の場合はデータベースを指定しないDSNを返します
func DatabaseDSN(user, password, host string, port int, database string) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", host, port)
	cfg.DBName = database
	cfg.ParseTime = true
	cfg.Collation = "utf8mb4_general_ci"
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}
