package testutils

import (
	"database/sql"
	"os"
	"strconv"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/migration"
	"github.com/traPtitech/traPin/utils/gormzap"
)

// MariaDB テスト用MariaDBサーバー
type MariaDB struct {
	User     string
	Password string
	Host     string
	Port     int

	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupMariaDB テスト用MariaDBサーバーを用意します
//
// 環境変数MARIADB_HOSTNAMEが設定されている場合はそのサーバーを使用し、
// 設定されていない場合はdockerでMariaDBコンテナを起動します
func SetupMariaDB() (*MariaDB, error) {
	m := &MariaDB{
		User:     getEnvOrDefault("MARIADB_USERNAME", "root"),
		Password: getEnvOrDefault("MARIADB_PASSWORD", "password"),
	}
	if host := os.Getenv("MARIADB_HOSTNAME"); len(host) > 0 {
		port, err := strconv.Atoi(getEnvOrDefault("MARIADB_PORT", "3306"))
		if err != nil {
			return nil, err
		}
		m.Host = host
		m.Port = port
		return m, nil
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mariadb",
		Tag:        "10.11",
		Env: []string{
			"MARIADB_ROOT_PASSWORD=" + m.Password,
		},
		Cmd: []string{"--character-set-server=utf8mb4", "--collation-server=utf8mb4_general_ci"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, err
	}
	if err := resource.Expire(600); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	port, err := strconv.Atoi(resource.GetPort("3306/tcp"))
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}
	m.User = "root"
	m.Host = "127.0.0.1"
	m.Port = port
	m.pool = pool
	m.resource = resource

	if err := pool.Retry(func() error {
		db, err := sql.Open("mysql", m.DSN(""))
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}
	return m, nil
}

// DSN 指定したデータベースへのDSNを返します
func (m *MariaDB) DSN(database string) string {
	return migration.DatabaseDSN(m.User, m.Password, m.Host, m.Port, database)
}

// CreateDatabases prefixを付けたデータベースを作成します
func (m *MariaDB) CreateDatabases(prefix string, names ...string) error {
	return migration.CreateDatabasesIfNotExists("mysql", m.DSN(""), prefix, names...)
}

// Open 指定したデータベースに接続します
func (m *MariaDB) Open(database string) (*gorm.DB, error) {
	engine, err := gorm.Open(mysql.Open(m.DSN(database)), &gorm.Config{
		Logger: gormzap.New(zap.NewNop()),
	})
	if err != nil {
		return nil, err
	}
	db, err := engine.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	return engine, nil
}

// Close dockerで起動したコンテナを破棄します
func (m *MariaDB) Close() error {
	if m.pool == nil {
		return nil
	}
	return m.pool.Purge(m.resource)
}

func getEnvOrDefault(env string, def string) string {
	s := os.Getenv(env)
	if len(s) == 0 {
		return def
	}
	return s
}
