package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer-analytics/cmd/explorer-analytics/cli"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	if err := cli.Setup(context.Background()); err != nil {
		log.Err(err).Msg("explorer-analytics exited with error")
		os.Exit(1)
	}
}
