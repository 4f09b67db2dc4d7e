package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/migration"
)

// migrateCommand データベースマイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropDB bool

	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getCLILogger()
			defer logger.Sync()

			engine, err := c.getDatabase()
			if err != nil {
				return err
			}
			db, err := engine.DB()
			if err != nil {
				return err
			}
			defer db.Close()

			if dropDB {
				logger.Info("Tables are being dropped...")
				if err := migration.DropAll(engine); err != nil {
					return err
				}
			}
			logger.Info("Migration is being started...")
			init, err := migration.Migrate(engine)
			if err != nil {
				return err
			}
			logger.Info("Migration was finished", zap.Bool("initialized", init))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dropDB, "reset", false, "whether to truncate database (drop all tables)")

	return &cmd
}
