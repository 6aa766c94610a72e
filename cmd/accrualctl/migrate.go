package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/segyhp/accrual-engine/internal/database"
)

const (
	fDatabaseURL = "database-url"
	fSteps       = "steps"
)

func migrateCommand() *cli.Command {
	urlFlag := &cli.StringFlag{Name: fDatabaseURL, EnvVars: []string{"DATABASE_URL"}, Required: true}

	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Flags: []cli.Flag{urlFlag},
				Action: func(c *cli.Context) error {
					return database.MigrateUp(c.String(fDatabaseURL))
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					urlFlag,
					&cli.IntFlag{Name: fSteps, Value: 1, Aliases: []string{"n"}},
				},
				Action: func(c *cli.Context) error {
					return database.MigrateDown(c.String(fDatabaseURL), c.Int(fSteps))
				},
			},
			{
				Name:  "status",
				Usage: "show the applied schema version",
				Flags: []cli.Flag{urlFlag},
				Action: func(c *cli.Context) error {
					status, err := database.GetMigrationStatus(c.String(fDatabaseURL))
					if err != nil {
						return err
					}
					if !status.Applied {
						fmt.Fprintln(c.App.Writer, "no migrations applied")
						return nil
					}
					state := "clean"
					if status.Dirty {
						state = "dirty"
					}
					fmt.Fprintf(c.App.Writer, "version %d (%s)\n", status.Version, state)
					return nil
				},
			},
		},
	}
}
