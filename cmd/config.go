package cmd

import (
	"fmt"
	"time"

	"cloud.google.com/go/profiler"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/migration"
	"github.com/traPtitech/traPin/router"
	"github.com/traPtitech/traPin/router/session"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Origin フロントエンドのオリジン (default: http://localhost:3000)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// Port サーバーポート番号 (default: 3001)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout シャットダウン時の待機秒数 (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// MariaDB データベース接続設定
	MariaDB struct {
		// Host ホスト名 (default: 127.0.0.1)
		Host string `mapstructure:"host" yaml:"host"`
		// Port ポート番号 (default: 3306)
		Port int `mapstructure:"port" yaml:"port"`
		// Username ユーザー名 (default: root)
		Username string `mapstructure:"username" yaml:"username"`
		// Password パスワード (default: password)
		Password string `mapstructure:"password" yaml:"password"`
		// Database データベース名 (default: pin)
		Database string `mapstructure:"database" yaml:"database"`
		// Connection コネクション設定
		Connection struct {
			// MaxOpen 最大オープン接続数. 0は無制限 (default: 0)
			MaxOpen int `mapstructure:"maxOpen" yaml:"maxOpen"`
			// MaxIdle 最大アイドル接続数 (default: 2)
			MaxIdle int `mapstructure:"maxIdle" yaml:"maxIdle"`
			// LifeTime 待機接続維持時間. 0は無制限 (default: 0)
			LifeTime int `mapstructure:"lifetime" yaml:"lifetime"`
		} `mapstructure:"connection" yaml:"connection"`
	} `mapstructure:"mariadb" yaml:"mariadb"`

	// Session セッション設定
	Session struct {
		// Store セッションストア (default: gorm)
		// 	gorm: データベース
		// 	memory: メモリ (再起動で消えます)
		Store string `mapstructure:"store" yaml:"store"`
		// GCInterval 期限切れセッションの削除間隔(秒) (default: 3600)
		GCInterval int `mapstructure:"gcInterval" yaml:"gcInterval"`
	} `mapstructure:"session" yaml:"session"`

	// GCP Google Cloud Platform設定
	GCP struct {
		// ServiceAccount サービスアカウント設定
		ServiceAccount struct {
			// ProjectID Google Cloud Console プロジェクトID
			ProjectID string `mapstructure:"projectId" yaml:"projectId"`
			// File クレデンシャルファイル
			File string `mapstructure:"file" yaml:"file"`
		} `mapstructure:"serviceAccount" yaml:"serviceAccount"`

		// Profiler Cloud Profiler設定
		Profiler struct {
			// Enabled 有効かどうか (default: false)
			Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		} `mapstructure:"profiler" yaml:"profiler"`
	} `mapstructure:"gcp" yaml:"gcp"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("origin", "http://localhost:3000")
	viper.SetDefault("port", 3001)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("mariadb.host", "127.0.0.1")
	viper.SetDefault("mariadb.port", 3306)
	viper.SetDefault("mariadb.username", "root")
	viper.SetDefault("mariadb.password", "password")
	viper.SetDefault("mariadb.database", "pin")
	viper.SetDefault("mariadb.connection.maxOpen", 0)
	viper.SetDefault("mariadb.connection.maxIdle", 2)
	viper.SetDefault("mariadb.connection.lifetime", 0)
	viper.SetDefault("session.store", "gorm")
	viper.SetDefault("session.gcInterval", 60*60)
	viper.SetDefault("gcp.serviceAccount.projectId", "")
	viper.SetDefault("gcp.serviceAccount.file", "")
	viper.SetDefault("gcp.profiler.enabled", false)
}

func (c Config) getDatabase() (*gorm.DB, error) {
	engine, err := gorm.Open(mysql.New(mysql.Config{
		DSN: migration.DatabaseDSN(
			c.MariaDB.Username,
			c.MariaDB.Password,
			c.MariaDB.Host,
			c.MariaDB.Port,
			c.MariaDB.Database,
		),
	}))
	if err != nil {
		return nil, err
	}
	db, err := engine.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(c.MariaDB.Connection.MaxOpen)
	db.SetMaxIdleConns(c.MariaDB.Connection.MaxIdle)
	db.SetConnMaxLifetime(time.Duration(c.MariaDB.Connection.LifeTime) * time.Second)
	return engine.Set("gorm:table_options", "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"), nil
}

func (c Config) getSessionStore(db *gorm.DB) (session.Store, error) {
	switch c.Session.Store {
	case "gorm":
		return session.NewGormStore(db), nil
	case "memory":
		return session.NewMemorySessionStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store: %s", c.Session.Store)
	}
}

func initProfiler(c *Config) error {
	return profiler.Start(profiler.Config{
		Service:        "pin",
		ServiceVersion: fmt.Sprintf("%s.%s", Version, Revision),
		ProjectID:      c.GCP.ServiceAccount.ProjectID,
	}, option.WithCredentialsFile(c.GCP.ServiceAccount.File))
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		Gzipped:       c.Gzip,
		AllowOrigins:  []string{c.Origin},
	}
}
