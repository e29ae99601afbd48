package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/inventory-console/internal/cli"
	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/repo"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	store, err := repo.NewSeededProductRepository(cfg.Limits, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("could not seed inventory")
	}
	log.Info().Int("products", len(store.List())).Msg("inventory ready")

	menu := cli.NewMenu(store, os.Stdin, os.Stdout, log.Logger)
	menu.Run()
	log.Info().Msg("session closed")
}
