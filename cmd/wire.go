package cmd

import (
	"Showcase/internal/handlers"
	"Showcase/internal/services"
)

type Server struct {
	MediaHandler     *handlers.MediaHandler
	GroupHandler     *handlers.GroupHandler
	BackupHandler    *handlers.BackupHandler
	SystemHandler    *handlers.SystemHandler
	ReconcileService services.ReconcileService
	BackupScheduler  *services.BackupScheduler
	LogService       services.LogService
}

func NewServer(
	mediaHandler *handlers.MediaHandler,
	groupHandler *handlers.GroupHandler,
	backupHandler *handlers.BackupHandler,
	systemHandler *handlers.SystemHandler,
	reconcileService services.ReconcileService,
	backupScheduler *services.BackupScheduler,
	logService services.LogService,
) *Server {
	return &Server{
		MediaHandler:     mediaHandler,
		GroupHandler:     groupHandler,
		BackupHandler:    backupHandler,
		SystemHandler:    systemHandler,
		ReconcileService: reconcileService,
		BackupScheduler:  backupScheduler,
		LogService:       logService,
	}
}
