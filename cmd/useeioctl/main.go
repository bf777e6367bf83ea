package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/useeio-io/useeio-store/internal/database"
	"github.com/useeio-io/useeio-store/internal/models"
	"github.com/useeio-io/useeio-store/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

func main() {
	// Override to capitalize "Show"
	cli.HelpFlag.(*cli.BoolFlag).Usage = "Show help"
	app := &cli.Command{
		Name:  "useeioctl",
		Usage: "Manage the USEEIO model store database",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("USEEIO_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "db-host",
				Value:   "postgres",
				Usage:   "Database host name",
				Sources: cli.EnvVars("USEEIO_DB_HOST"),
			},
			&cli.StringFlag{
				Name:    "db-port",
				Value:   "5432",
				Usage:   "Database port",
				Sources: cli.EnvVars("USEEIO_DB_PORT"),
			},
			&cli.StringFlag{
				Name:    "db-user",
				Value:   "useeio",
				Usage:   "Database user",
				Sources: cli.EnvVars("USEEIO_DB_USER"),
			},
			&cli.StringFlag{
				Name:    "db-password",
				Value:   "password",
				Usage:   "Database password",
				Sources: cli.EnvVars("USEEIO_DB_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "db-name",
				Value:   "useeio",
				Usage:   "Database name",
				Sources: cli.EnvVars("USEEIO_DB_NAME"),
			},
			&cli.StringFlag{
				Name:    "db-sslmode",
				Value:   "disable",
				Usage:   "Database ssl mode",
				Sources: cli.EnvVars("USEEIO_DB_SSLMODE"),
			},
		},
	}
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "migrate",
		Usage: "Apply all pending database migrations",
		Action: func(ctx context.Context, command *cli.Command) error {
			withLoggerAndDB(ctx, command, func(logger *zap.Logger, db *gorm.DB, dsn string) {
				if err := database.NewMigrations().Migrate(ctx, db); err != nil {
					log.Fatal(err)
				}
			})
			return nil
		},
	})
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "rollback",
		Usage: "Rollback the last database migration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Value: false,
				Usage: "Rollback all migrations",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			withLoggerAndDB(ctx, command, func(logger *zap.Logger, db *gorm.DB, dsn string) {
				m := database.NewMigrations()
				var err error
				if command.Bool("all") {
					err = m.RollbackAll(ctx, db)
				} else {
					err = m.RollbackLast(ctx, db)
				}
				if err != nil {
					log.Fatal(err)
				}
			})
			return nil
		},
	})
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "models",
		Usage: "List the model versions in the store",
		Action: func(ctx context.Context, command *cli.Command) error {
			withStore(ctx, command, func(s *store.Store) {
				list, err := s.ListModels(ctx)
				if err != nil {
					log.Fatal(err)
				}
				for _, m := range list {
					fmt.Println(formatModel(m))
				}
			})
			return nil
		},
	})
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "set-active",
		Usage:     "Mark one model version active, all others inactive",
		ArgsUsage: "<model-version>",
		Action: func(ctx context.Context, command *cli.Command) error {
			version := command.Args().First()
			if version == "" {
				return fmt.Errorf("model version argument is required")
			}
			withStore(ctx, command, func(s *store.Store) {
				if err := s.SetActiveModel(ctx, version); err != nil {
					log.Fatal(err)
				}
			})
			return nil
		},
	})
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete-model",
		Usage:     "Delete a model version and all of its table rows",
		ArgsUsage: "<model-version>",
		Action: func(ctx context.Context, command *cli.Command) error {
			version := command.Args().First()
			if version == "" {
				return fmt.Errorf("model version argument is required")
			}
			withStore(ctx, command, func(s *store.Store) {
				if err := s.DeleteModelVersion(ctx, version); err != nil {
					log.Fatal(err)
				}
			})
			return nil
		},
	})

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func formatModel(m models.ModelMetadata) string {
	active := ""
	if m.IsActive {
		active = " (active)"
	}
	year := "-"
	if m.EconomicYear != nil {
		year = fmt.Sprintf("%d", *m.EconomicYear)
	}
	return fmt.Sprintf("%s\teconomic_year=%s%s", m.ModelVersion, year, active)
}

func getLogger(command *cli.Command) *zap.Logger {
	var logger *zap.Logger
	var err error
	// set the log level
	if command.Bool("debug") {
		logConfig := zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		logger, err = logConfig.Build()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	return logger
}

func withLoggerAndDB(ctx context.Context, command *cli.Command, f func(logger *zap.Logger, db *gorm.DB, dsn string)) {
	logger := getLogger(command)
	db, dsn, err := database.NewDatabase(
		ctx,
		logger.Sugar(),
		command.String("db-host"),
		command.String("db-user"),
		command.String("db-password"),
		command.String("db-name"),
		command.String("db-port"),
		command.String("db-sslmode"),
	)
	if err != nil {
		log.Fatal(err)
	}
	f(logger, db, dsn)
}

func withStore(ctx context.Context, command *cli.Command, f func(s *store.Store)) {
	withLoggerAndDB(ctx, command, func(logger *zap.Logger, db *gorm.DB, dsn string) {
		s, err := store.New(logger.Sugar(), db)
		if err != nil {
			log.Fatal(err)
		}
		f(s)
	})
}
