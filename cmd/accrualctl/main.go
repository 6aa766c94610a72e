package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "accrualctl",
		Usage: "operate the investment accrual engine",
		Commands: []*cli.Command{
			migrateCommand(),
			sweepCommand(),
			profitsCommand(),
		},
	}
}
