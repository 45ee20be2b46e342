package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/fintech-ro/bancar/infra/initializer"
	"github.com/fintech-ro/bancar/pkg/config"
	"github.com/fintech-ro/bancar/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps := initializer.InitializeDependencies(cfg)

	app := webapi.New(deps.Service, deps.Logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)

	return app.Listen(addr)
}
