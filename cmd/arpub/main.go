package main

import (
	"fmt"

	"github.com/vkarev/arpub/internal/adapter"
	"github.com/vkarev/arpub/internal/client"
	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/export"
	"github.com/vkarev/arpub/internal/logger"
	"github.com/vkarev/arpub/internal/preview"
	"github.com/vkarev/arpub/internal/service"
	"github.com/vkarev/arpub/internal/store"
	"github.com/vkarev/arpub/internal/tui"
	"github.com/vkarev/arpub/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("arpub")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway adapter")
	}

	priceFeed, err := adapter.NewPriceFeed(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create price feed adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	host, err := vault.NewFSVault(cfg.Vault, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open note vault")
	}

	services := service.NewClientServices(storages, gateway, priceFeed, log)
	exporter := export.New(host, log)
	previewServer := preview.NewServer(cfg.Preview, log)

	ui, err := tui.New(services, exporter, previewServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, previewServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
