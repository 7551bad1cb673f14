package cmd

import (
	"database/sql"

	"github.com/5urf/carrot-challenge/store/v1/migrations"
	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/fatih/color"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"github.com/urfave/cli/v2"
)

func NewMigrationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "migrations",
		Aliases: []string{"m"},
		Usage:   "Run database migrations for the account data store",
		Subcommands: []*cli.Command{
			newDatabaseInitCommand(),
			newMigrationsRunCommand(),
		},
		Action: func(ctx *cli.Context) error {
			return nil
		},
	}
}

func newMigrationsRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run any new migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dsn",
				Value:    "postgres://localhost:5432/carrot",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			db := getBunDB(ctx)
			migrations.PerformMigrations(ctx.Context, db)
			return nil
		},
	}
}

func newDatabaseInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialise the database, create tables and indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dsn", Value: "postgres://localhost:5432/carrot", Required: true},
		},
		Action: func(ctx *cli.Context) error {
			db := getBunDB(ctx)

			migrator := migrations.NewMigrator(db)
			if err := migrator.Init(ctx.Context); err != nil {
				return cli.Exit(color.RedString("Tables=migration_locks Created=no Error=%s", err), 1)
			}
			color.Green(`Table "carrot_migration_locks" created`)
			color.Green(`Table "carrot_migrations" created`)

			if _, err := db.NewCreateTable().Model((*types.User)(nil)).IfNotExists().Exec(ctx.Context); err != nil {
				return cli.Exit(color.RedString("Tables=users Created=no Error=%s", err), 1)
			}
			color.Green(`Table "users" created`)

			if _, err := db.NewCreateTable().
				Model((*types.Session)(nil)).
				IfNotExists().
				ForeignKey(`(owner_id) references users (id) on delete cascade`).
				Exec(ctx.Context); err != nil {
				return cli.Exit(color.RedString("Tables=sessions Created=no Error=%s", err), 1)
			}
			color.Green(`Table "sessions" created`)

			return nil
		},
	}
}

func getBunDB(ctx *cli.Context) *bun.DB {
	dsn := ctx.String("dsn")
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(false),
		bundebug.FromEnv("BUNDEBUG"),
	))

	return db
}
