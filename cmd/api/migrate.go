package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"legaldocs/internal/config"
	"legaldocs/internal/database"
	"legaldocs/internal/database/migration"
	"legaldocs/internal/logging"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply or revert schema revisions recorded in alembic_version",
	Subcommands: []*cli.Command{
		{
			Name:  "up",
			Usage: "Upgrade to the newest revision",
			Action: withMigrator(func(cCtx *cli.Context, m *migration.Migrator) error {
				return m.Upgrade(cCtx.Context)
			}),
		},
		{
			Name:  "down",
			Usage: "Revert the current revision",
			Action: withMigrator(func(cCtx *cli.Context, m *migration.Migrator) error {
				return m.Downgrade(cCtx.Context)
			}),
		},
		{
			Name:  "current",
			Usage: "Print the current revision",
			Action: withMigrator(func(cCtx *cli.Context, m *migration.Migrator) error {
				rev, err := m.Current(cCtx.Context)
				if err != nil {
					return err
				}
				if rev == "" {
					rev = "<none>"
				}
				_, err = fmt.Fprintf(cCtx.App.Writer, "%s (head %s)\n", rev, m.Head())
				return err
			}),
		},
	},
}

func withMigrator(fn func(*cli.Context, *migration.Migrator) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := logging.New(cfg.LogLevel, cfg.Location())

		db, err := database.NewPostgres(cCtx.Context, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return fn(cCtx, migration.New(db, logger, cfg.Database.Host))
	}
}
