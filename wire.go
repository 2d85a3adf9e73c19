//go:build wireinject
// +build wireinject

package main

import (
	"Showcase/cmd"
	"Showcase/internal/config"
	"Showcase/internal/handlers"
	"Showcase/internal/repository"
	"Showcase/internal/services"
	"github.com/google/wire"
)

func InitializeServer(cfg *config.Configuration) (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewLogService,
		services.NewFieldLogger,
		services.NewClock,
		repository.NewMetadataRepository,
		services.NewBackupService,
		services.NewBackupScheduler,
		services.NewReconcileService,
		services.NewGroupService,
		services.NewExportService,
		services.NewMediaService,
		services.NewSystemService,
		handlers.NewMediaHandler,
		handlers.NewGroupHandler,
		handlers.NewBackupHandler,
		handlers.NewSystemHandler,
	)
	return nil, nil
}
