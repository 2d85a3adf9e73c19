package services

import (
	"errors"
	"sync"

	"Showcase/internal/config"
	"Showcase/internal/dto"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BackupScheduler runs snapshots on the configured cron schedule and makes
// sure two scheduled or forced runs never overlap.
type BackupScheduler struct {
	backupService BackupService
	configuration *config.Configuration
	logService    LogService
	running       bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewBackupScheduler(
	backupService BackupService,
	configuration *config.Configuration,
	logService LogService,
) *BackupScheduler {
	return &BackupScheduler{
		backupService: backupService,
		configuration: configuration,
		logService:    logService,
		cron:          cron.New(),
	}
}

// Start registers the schedule; an empty schedule leaves scheduling disabled.
func (b *BackupScheduler) Start() error {
	schedule := b.configuration.Backup.Schedule
	if schedule == "" {
		b.logService.Log.Debug("no backup schedule configured")
		return nil
	}
	_, err := b.cron.AddFunc(schedule, func() {
		if _, err := b.run(); errors.Is(err, ErrBackupInProgress) {
			b.logService.Log.WithField("job", "backup").Warn("previous backup still running, skipping")
		}
	})
	if err != nil {
		b.logService.Log.WithFields(logrus.Fields{
			"job":   "backup",
			"cron":  schedule,
			"error": err.Error(),
		}).Error("failed to schedule backups")
		return err
	}
	b.cron.Start()
	b.logService.Log.WithFields(logrus.Fields{
		"job":  "backup",
		"cron": schedule,
	}).Info("scheduled backups started")
	return nil
}

func (b *BackupScheduler) Stop() {
	<-b.cron.Stop().Done()
}

// ForceBackup runs a backup right away unless one is already running.
func (b *BackupScheduler) ForceBackup() (*dto.BackupDTO, error) {
	return b.run()
}

func (b *BackupScheduler) IsRunning() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.running
}

func (b *BackupScheduler) run() (*dto.BackupDTO, error) {
	b.mutex.Lock()
	if b.running {
		b.mutex.Unlock()
		return nil, ErrBackupInProgress
	}
	b.running = true
	b.mutex.Unlock()

	defer func() {
		b.mutex.Lock()
		b.running = false
		b.mutex.Unlock()
	}()

	return b.backupService.CreateBackup()
}
