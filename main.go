package main

import (
	"fmt"
	"log"
	"os"

	"Showcase/internal/config"
	"Showcase/internal/server"
)

func main() {
	cfg, err := config.LoadConfiguration(configPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	srv, err := InitializeServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := srv.ReconcileService.Run(); err != nil {
		srv.LogService.Log.WithError(err).Error("startup reconciliation failed")
	}
	if err := srv.BackupScheduler.Start(); err != nil {
		srv.LogService.Log.WithError(err).Error("backup scheduler disabled")
	}
	defer srv.BackupScheduler.Stop()

	app := server.NewApp(srv, cfg)
	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		srv.LogService.Log.Fatalf("Failed to start server: %v", err)
	}
}

func configPath() string {
	if path := os.Getenv("SHOWCASE_CONFIG"); path != "" {
		return path
	}
	return "showcase.yaml"
}
