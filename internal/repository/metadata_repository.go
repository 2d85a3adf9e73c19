package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"Showcase/internal/config"
	"Showcase/internal/models"
	"github.com/sirupsen/logrus"
)

// MetadataRepository persists the item metadata as a JSON sidecar file with a
// mirrored backup copy. Load and Save are not safe for concurrent writers;
// mutations go through Update, which serialises the read-modify-write cycle.
type MetadataRepository interface {
	Load() models.Metadata
	Save(metadata models.Metadata) error
	Update(fn func(metadata models.Metadata) error) error
	WithLock(fn func() error) error
	Exists() bool
}

type metadataRepositoryImpl struct {
	primaryPath string
	backupPath  string
	log         logrus.FieldLogger
	mutex       sync.Mutex
}

func NewMetadataRepository(configuration *config.Configuration, log logrus.FieldLogger) MetadataRepository {
	return &metadataRepositoryImpl{
		primaryPath: configuration.MetadataPath(),
		backupPath:  configuration.BackupMetadataPath(),
		log:         log.WithField("component", "metadata"),
	}
}

func (r *metadataRepositoryImpl) Load() models.Metadata {
	metadata, err := readMetadata(r.primaryPath)
	if err == nil {
		return metadata
	}
	if !os.IsNotExist(err) {
		r.log.WithFields(logrus.Fields{
			"path":  r.primaryPath,
			"error": err.Error(),
		}).Warn("failed to read metadata, trying backup copy")
	}

	metadata, backupErr := readMetadata(r.backupPath)
	if backupErr != nil {
		if !os.IsNotExist(backupErr) {
			r.log.WithFields(logrus.Fields{
				"path":  r.backupPath,
				"error": backupErr.Error(),
			}).Warn("failed to read backup metadata, starting empty")
		}
		return models.Metadata{}
	}

	r.log.WithField("items", len(metadata)).Info("restored metadata from backup copy")
	if err := writeAtomic(r.primaryPath, metadata); err != nil {
		r.log.WithField("error", err.Error()).Warn("failed to resync primary metadata from backup")
	}
	return metadata
}

func (r *metadataRepositoryImpl) Save(metadata models.Metadata) error {
	if err := writeAtomic(r.primaryPath, metadata); err != nil {
		r.log.WithFields(logrus.Fields{
			"path":  r.primaryPath,
			"error": err.Error(),
		}).Error("failed to save metadata")
		return err
	}
	if err := writeAtomic(r.backupPath, metadata); err != nil {
		r.log.WithFields(logrus.Fields{
			"path":  r.backupPath,
			"error": err.Error(),
		}).Warn("failed to mirror metadata")
	}
	return nil
}

func (r *metadataRepositoryImpl) Update(fn func(metadata models.Metadata) error) error {
	return r.WithLock(func() error {
		metadata := r.Load()
		if err := fn(metadata); err != nil {
			return err
		}
		return r.Save(metadata)
	})
}

func (r *metadataRepositoryImpl) WithLock(fn func() error) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return fn()
}

func (r *metadataRepositoryImpl) Exists() bool {
	_, err := os.Stat(r.primaryPath)
	return err == nil
}

func readMetadata(path string) (models.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	metadata := models.Metadata{}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for id, record := range metadata {
		if record == nil {
			delete(metadata, id)
		}
	}
	return metadata, nil
}

// writeAtomic writes the metadata to a temp file next to path and renames it
// into place, so readers never observe a partial file.
func writeAtomic(path string, metadata models.Metadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, ".metadata-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
