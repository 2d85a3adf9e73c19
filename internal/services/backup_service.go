package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"Showcase/internal/config"
	"Showcase/internal/dto"
	"Showcase/internal/helpers"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/dustin/go-humanize"
	"github.com/otiai10/copy"
	"github.com/sirupsen/logrus"
)

const (
	backupPrefix       = "backup-"
	backupMetadataFile = "metadata.json"
	backupUploadsDir   = "uploads"
)

var backupNameReplacer = strings.NewReplacer(":", "-", ".", "-")

var backupNameRegex = regexp.MustCompile(`^backup-[0-9TZ-]+$`)

type BackupService interface {
	CreateBackup() (*dto.BackupDTO, error)
	ListBackups() ([]dto.BackupDTO, error)
	Restore(name string) (*dto.RestoreDTO, error)
	LatestBackup() (string, bool)
}

type backupServiceImpl struct {
	metadataRepository repository.MetadataRepository
	configuration      *config.Configuration
	clock              Clock
	logService         LogService
}

func NewBackupService(
	metadataRepository repository.MetadataRepository,
	configuration *config.Configuration,
	clock Clock,
	logService LogService,
) BackupService {
	return &backupServiceImpl{
		metadataRepository: metadataRepository,
		configuration:      configuration,
		clock:              clock,
		logService:         logService,
	}
}

// BackupName formats a snapshot directory name, e.g. backup-2024-01-01T00-00-00-000Z.
func BackupName(t time.Time) string {
	return backupPrefix + backupNameReplacer.Replace(t.UTC().Format(models.TimeLayout))
}

// parseBackupTime reverses BackupName for the timestamp part of a name.
func parseBackupTime(name string) (time.Time, bool) {
	stamp := []byte(strings.TrimPrefix(name, backupPrefix))
	if len(stamp) < len(models.TimeLayout) {
		return time.Time{}, false
	}
	stamp = stamp[:len(models.TimeLayout)]
	stamp[13], stamp[16], stamp[19] = ':', ':', '.'
	t, err := time.Parse(models.TimeLayout, string(stamp))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *backupServiceImpl) CreateBackup() (*dto.BackupDTO, error) {
	var backup *dto.BackupDTO
	err := s.metadataRepository.WithLock(func() error {
		backupsPath := s.configuration.BackupsPath()
		if err := os.MkdirAll(backupsPath, 0o755); err != nil {
			return fmt.Errorf("creating backups directory: %w", err)
		}

		name, err := s.reserveName(backupsPath)
		if err != nil {
			return err
		}
		snapshotPath := filepath.Join(backupsPath, name)

		uploadsPath := s.configuration.UploadsPath()
		snapshotUploads := filepath.Join(snapshotPath, backupUploadsDir)
		if _, err := os.Stat(uploadsPath); err == nil {
			if err := copy.Copy(uploadsPath, snapshotUploads); err != nil {
				return fmt.Errorf("copying uploads: %w", err)
			}
		} else if err := os.MkdirAll(snapshotUploads, 0o755); err != nil {
			return fmt.Errorf("creating snapshot uploads: %w", err)
		}

		data, err := json.MarshalIndent(s.metadataRepository.Load(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
		if err := os.WriteFile(filepath.Join(snapshotPath, backupMetadataFile), data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot metadata: %w", err)
		}

		info := s.describe(name)
		backup = &info
		return nil
	})
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":   "backup",
			"error": err.Error(),
		}).Error("backup failed")
		return nil, err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"job":    "backup",
		"backup": backup.Name,
		"files":  backup.FileCount,
		"size":   backup.SizeHuman,
	}).Info("backup created")
	return backup, nil
}

// reserveName creates the snapshot directory under a name not used yet.
func (s *backupServiceImpl) reserveName(backupsPath string) (string, error) {
	base := BackupName(s.clock.Now())
	name := base
	for i := 1; ; i++ {
		err := os.Mkdir(filepath.Join(backupsPath, name), 0o755)
		if err == nil {
			return name, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("creating snapshot directory: %w", err)
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *backupServiceImpl) backupNames() ([]string, error) {
	entries, err := os.ReadDir(s.configuration.BackupsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && backupNameRegex.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	// the timestamp layout sorts lexically; newest first
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (s *backupServiceImpl) describe(name string) dto.BackupDTO {
	snapshotPath := filepath.Join(s.configuration.BackupsPath(), name)
	info := dto.BackupDTO{Name: name}
	if created, ok := parseBackupTime(name); ok {
		info.CreatedAt = created.UTC().Format(models.TimeLayout)
	}
	if files, err := helpers.ListMediaFiles(filepath.Join(snapshotPath, backupUploadsDir)); err == nil {
		info.FileCount = len(files)
	}
	if size, err := helpers.DirSize(snapshotPath); err == nil {
		info.Size = size
	}
	info.SizeHuman = humanize.Bytes(uint64(info.Size))
	return info
}

func (s *backupServiceImpl) ListBackups() ([]dto.BackupDTO, error) {
	names, err := s.backupNames()
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}
	backups := make([]dto.BackupDTO, 0, len(names))
	for _, name := range names {
		backups = append(backups, s.describe(name))
	}
	return backups, nil
}

func (s *backupServiceImpl) LatestBackup() (string, bool) {
	names, err := s.backupNames()
	if err != nil || len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// Restore copies a snapshot over the live state. Files are merged into the
// uploads directory without clearing it; the snapshot metadata replaces the
// live metadata.
func (s *backupServiceImpl) Restore(name string) (*dto.RestoreDTO, error) {
	if !backupNameRegex.MatchString(name) {
		return nil, fmt.Errorf("%w: invalid backup name %q", ErrValidation, name)
	}
	snapshotPath := filepath.Join(s.configuration.BackupsPath(), name)
	if info, err := os.Stat(snapshotPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: backup %s", ErrNotFound, name)
	}

	result := &dto.RestoreDTO{Name: name}
	err := s.metadataRepository.WithLock(func() error {
		snapshotUploads := filepath.Join(snapshotPath, backupUploadsDir)
		files, err := helpers.ListMediaFiles(snapshotUploads)
		if err != nil {
			return fmt.Errorf("reading snapshot uploads: %w", err)
		}
		if len(files) > 0 {
			if err := copy.Copy(snapshotUploads, s.configuration.UploadsPath()); err != nil {
				return fmt.Errorf("copying snapshot uploads: %w", err)
			}
		}
		result.FilesRestored = len(files)

		data, err := os.ReadFile(filepath.Join(snapshotPath, backupMetadataFile))
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("reading snapshot metadata: %w", err)
		}
		metadata := models.Metadata{}
		if err := json.Unmarshal(data, &metadata); err != nil {
			return fmt.Errorf("parsing snapshot metadata: %w", err)
		}
		for id, record := range metadata {
			if record == nil {
				delete(metadata, id)
			}
		}
		result.ItemsRestored = len(metadata)
		return s.metadataRepository.Save(metadata)
	})
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":    "restore",
			"backup": name,
			"error":  err.Error(),
		}).Error("restore failed")
		return nil, err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"job":    "restore",
		"backup": name,
		"files":  result.FilesRestored,
		"items":  result.ItemsRestored,
	}).Info("backup restored")
	return result, nil
}
