package services

import (
	"errors"
	"fmt"
	"os"

	"Showcase/internal/config"
	"Showcase/internal/helpers"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/sirupsen/logrus"
)

var errNothingToReconcile = errors.New("metadata already consistent")

type ReconcileService interface {
	Run() (*ReconcileResult, error)
}

type ReconcileResult struct {
	RestoredFrom string
	Added        []string
	Removed      []string
}

type reconcileServiceImpl struct {
	metadataRepository repository.MetadataRepository
	backupService      BackupService
	configuration      *config.Configuration
	logService         LogService
}

func NewReconcileService(
	metadataRepository repository.MetadataRepository,
	backupService BackupService,
	configuration *config.Configuration,
	logService LogService,
) ReconcileService {
	return &reconcileServiceImpl{
		metadataRepository: metadataRepository,
		backupService:      backupService,
		configuration:      configuration,
		logService:         logService,
	}
}

// Reconcile aligns metadata with the media files on disk: records of stored
// files that are gone are dropped (files are never touched) and files without
// a record get a default one. Link records are kept. The input map is not modified.
func Reconcile(metadata models.Metadata, files []helpers.MediaFile) (models.Metadata, bool) {
	updated, added, removed := reconcile(metadata, files)
	return updated, len(added) > 0 || len(removed) > 0
}

func reconcile(metadata models.Metadata, files []helpers.MediaFile) (models.Metadata, []string, []string) {
	updated := metadata.Clone()
	onDisk := make(map[string]bool, len(files))
	for _, file := range files {
		onDisk[file.Name] = true
	}

	var added, removed []string
	for id, record := range updated {
		if !record.IsExternalLink() && !onDisk[id] {
			delete(updated, id)
			removed = append(removed, id)
		}
	}
	for _, file := range files {
		if _, ok := updated[file.Name]; !ok {
			updated[file.Name] = newDefaultRecord(file)
			added = append(added, file.Name)
		}
	}
	return updated, added, removed
}

func newDefaultRecord(file helpers.MediaFile) *models.Record {
	return &models.Record{
		Category:   models.DefaultCategory,
		UploadDate: file.ModTime.UTC().Format(models.TimeLayout),
		Type:       helpers.GetMediaType(file.Name),
		Order:      models.DefaultOrder,
	}
}

// Run is the startup pass. An empty uploads directory with snapshots present
// is treated as lost data and the newest snapshot is restored before any
// metadata gets pruned.
func (s *reconcileServiceImpl) Run() (*ReconcileResult, error) {
	log := s.logService.Log.WithField("job", "reconcile")
	result := &ReconcileResult{}

	for _, dir := range []string{s.configuration.UploadsPath(), s.configuration.BackupsPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	files, err := helpers.ListMediaFiles(s.configuration.UploadsPath())
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}

	if len(files) == 0 {
		if latest, ok := s.backupService.LatestBackup(); ok {
			log.WithField("backup", latest).Warn("uploads directory is empty, restoring latest backup")
			if _, err := s.backupService.Restore(latest); err != nil {
				log.WithFields(logrus.Fields{
					"backup": latest,
					"error":  err.Error(),
				}).Error("restore failed, previously uploaded media may be lost")
			} else {
				result.RestoredFrom = latest
				if files, err = helpers.ListMediaFiles(s.configuration.UploadsPath()); err != nil {
					return nil, fmt.Errorf("listing uploads: %w", err)
				}
			}
		}
	}

	err = s.metadataRepository.Update(func(metadata models.Metadata) error {
		updated, added, removed := reconcile(metadata, files)
		if len(added) == 0 && len(removed) == 0 {
			return errNothingToReconcile
		}
		result.Added, result.Removed = added, removed
		for id := range metadata {
			delete(metadata, id)
		}
		for id, record := range updated {
			metadata[id] = record
		}
		return nil
	})
	if err != nil && !errors.Is(err, errNothingToReconcile) {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"files":   len(files),
		"added":   len(result.Added),
		"removed": len(result.Removed),
	}).Info("metadata reconciled")
	return result, nil
}
