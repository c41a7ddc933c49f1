package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/wastewise/pickup/internal/buildinfo"
	"github.com/wastewise/pickup/internal/client/cli"
	"github.com/wastewise/pickup/internal/client/config"
	"github.com/wastewise/pickup/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewZerologLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
