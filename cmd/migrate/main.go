package main

import (
	"context"
	"os"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/adapter/storage/postgres"
	"settlement-ledger/migrations"
	"settlement-ledger/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.Component(logger.New(cfg.Log.Level, cfg.Log.Pretty), "migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool, migrations.FS, log)
	if err != nil {
		log.Fatal().Err(err).Int("applied", applied).Msg("migration failed")
	}
	log.Info().Int("applied", applied).Msg("schema up to date")
}
