package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hotelforge/aggregator/internal/adapter/hotelbeds"
	"github.com/hotelforge/aggregator/internal/cityupdater"
	"github.com/hotelforge/aggregator/internal/platform/config"
	"github.com/hotelforge/aggregator/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	logger.Info("Starting city updater...")
	logger.Infof("Update interval: %s, heartbeat interval: %s, output: %s",
		cfg.CityUpdater.UpdateInterval, cfg.CityUpdater.HeartbeatInterval, cfg.CityUpdater.OutputPath)

	placeProvider := hotelbeds.New(cfg.Hotelbeds.APIKey, cfg.Hotelbeds.Secret, cfg.Hotelbeds.BaseURL, cfg.Hotelbeds.RequestsPerMinute)

	svc := cityupdater.New(cityupdater.Config{
		UpdateInterval:    cfg.CityUpdater.UpdateInterval,
		HeartbeatInterval: cfg.CityUpdater.HeartbeatInterval,
		OutputPath:        cfg.CityUpdater.OutputPath,
		Countries:         defaultCountries(),
	}, placeProvider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc.Run(ctx)
	logger.Info("City updater exited cleanly")
}

// defaultCountries is the seed country list the reference deployment
// refreshes; operators needing a different set run their own cmd wiring
// a custom cityupdater.Config instead of flags here.
func defaultCountries() []cityupdater.Country {
	return []cityupdater.Country{
		{Code: "ID", Name: "Indonesia"},
		{Code: "MY", Name: "Malaysia"},
		{Code: "SG", Name: "Singapore"},
		{Code: "TH", Name: "Thailand"},
	}
}
