package main

import (
	"log"
	"time"

	"ecomdash/internal/application/dashboard"
	"ecomdash/internal/config"
	"ecomdash/internal/infrastructure/dataset"
	ginserver "ecomdash/internal/infrastructure/http/gin"
	"ecomdash/internal/interfaces/http/handler"
	"ecomdash/internal/interfaces/http/router"
	"ecomdash/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	client := dataset.NewClient(time.Duration(cfg.Dataset.TimeoutSec) * time.Second)
	loader := dataset.NewCSVLoader(client, zlog)
	cache := dataset.NewCache(loader)

	svc := dashboard.NewService(cache, cfg.Dataset.Source, dashboard.Options{
		TopCategories: cfg.Dashboard.TopCategories,
		TopCities:     cfg.Dashboard.TopCities,
		ShippingBins:  cfg.Dashboard.ShippingBins,
	}, time.Now, zlog)

	dashboardHandler := handler.NewDashboardHandler(svc)
	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, dashboardHandler)

	zlog.Info("dashboard api starting",
		logger.String("addr", cfg.Server.Address()),
		logger.String("dataset", cfg.Dataset.Source),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		zlog.Fatal("server run failed", logger.Error(err))
	}
}
