package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/heara/heara-api/internal/config"
	"github.com/heara/heara-api/internal/database"
	"github.com/heara/heara-api/internal/repository"
	"github.com/heara/heara-api/internal/seed"
)

// main clears and repopulates the leads and products collections with the
// fixed sample data. One-shot: run it by hand, never from the API server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(&cfg.Mongo)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Str("database", cfg.Mongo.Database).Msg("seeding database")

	productCount, leadCount, err := seed.Run(
		ctx,
		repository.NewLeadRepository(db),
		repository.NewProductRepository(db),
	)
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}

	log.Info().
		Int("products", productCount).
		Int("leads", leadCount).
		Msg("seeding complete")
}
