package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title Legal Documents API
// @version 2.0
// @description Document gateway for the legal entity registry.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:           "legaldocs",
		Usage:          "Legal registry document gateway",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
