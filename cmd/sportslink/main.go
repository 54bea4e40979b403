package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/JehanPinto/SportsLink/internal/buildinfo"
	"github.com/JehanPinto/SportsLink/internal/cli"
	"github.com/JehanPinto/SportsLink/internal/config"
	"github.com/JehanPinto/SportsLink/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
