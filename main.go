package main

import (
	"os"

	"github.com/5urf/carrot-challenge/cmd"
	"github.com/5urf/carrot-challenge/cmd/server"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "carrot",
		Usage: "account service for the carrot marketplace",
		Commands: []*cli.Command{
			server.NewServerCommand(),
			cmd.NewMigrationsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
}
