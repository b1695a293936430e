package main

import (
	"context"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"ecomdash/internal/config"
	"ecomdash/internal/infrastructure/dataset"
	"ecomdash/internal/infrastructure/persistence/postgres"
	"ecomdash/pkg/logger"
)

const copyBatchSize = 5000

// Ingest loads the CSV dataset, normalizes it, and replaces the Postgres
// snapshot with the result.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "" {
		log.Fatal("postgres config is incomplete (POSTGRES_HOST/POSTGRES_USER/POSTGRES_DB)")
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := dataset.NewClient(time.Duration(cfg.Dataset.TimeoutSec) * time.Second)
	loader := dataset.NewCSVLoader(client, zlog)

	orders, err := loader.Load(ctx, cfg.Dataset.Source)
	if err != nil {
		zlog.Fatal("load dataset failed", logger.Error(err))
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		zlog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	repo := postgres.NewOrderRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		zlog.Fatal("ensure schema failed", logger.Error(err))
	}
	if err := repo.Truncate(ctx); err != nil {
		zlog.Fatal("truncate snapshot failed", logger.Error(err))
	}

	bar := progressbar.Default(int64(len(orders)), "copying rows")
	var total int64
	for start := 0; start < len(orders); start += copyBatchSize {
		end := start + copyBatchSize
		if end > len(orders) {
			end = len(orders)
		}
		n, err := repo.CopyOrders(ctx, orders[start:end])
		if err != nil {
			zlog.Fatal("copy batch failed", logger.Error(err))
		}
		total += n
		_ = bar.Add(end - start)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		zlog.Fatal("count snapshot failed", logger.Error(err))
	}

	zlog.Info("snapshot ingested",
		logger.String("source", cfg.Dataset.Source),
		logger.Any("rows_copied", total),
		logger.Any("rows_in_table", count),
	)
}
