package repository

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"Showcase/internal/config"
	"Showcase/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (MetadataRepository, *config.Configuration) {
	cfg := config.Default()
	cfg.Storage.Path = t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMetadataRepository(cfg, log), cfg
}

func sampleMetadata() models.Metadata {
	return models.Metadata{
		"1700000000000-abcd1234.jpg": {
			Category:    "travel",
			Description: "beach",
			UploadDate:  "2024-01-01T00:00:00.000Z",
			Type:        models.TypeImage,
			GroupID:     "group-1",
			Order:       1,
		},
		"link-1700000000001-ffff0000": {
			Category:   models.DefaultCategory,
			UploadDate: "2024-01-01T00:00:01.000Z",
			Type:       models.TypeVideo,
			Order:      models.DefaultOrder,
			Link: &models.ExternalLink{
				URL:       "https://youtu.be/abc123",
				EmbedURL:  "https://www.youtube.com/embed/abc123",
				VideoType: models.VideoTypeYoutube,
			},
		},
	}
}

func TestMetadataRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := setupTestRepository(t)
	metadata := sampleMetadata()

	require.NoError(t, repo.Save(metadata))
	loaded := repo.Load()
	assert.Equal(t, metadata, loaded)

	require.NoError(t, repo.Save(loaded))
	assert.Equal(t, loaded, repo.Load())
}

func TestMetadataRepository_SaveMirrorsBackupCopy(t *testing.T) {
	repo, cfg := setupTestRepository(t)
	require.NoError(t, repo.Save(sampleMetadata()))

	primary, err := os.ReadFile(cfg.MetadataPath())
	require.NoError(t, err)
	mirror, err := os.ReadFile(cfg.BackupMetadataPath())
	require.NoError(t, err)
	assert.Equal(t, primary, mirror)

	entries, err := os.ReadDir(cfg.Storage.Path)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}

func TestMetadataRepository_LoadFallsBackToBackup(t *testing.T) {
	repo, cfg := setupTestRepository(t)
	metadata := sampleMetadata()
	require.NoError(t, repo.Save(metadata))
	require.NoError(t, os.WriteFile(cfg.MetadataPath(), []byte("{not json"), 0o644))

	loaded := repo.Load()
	assert.Equal(t, metadata, loaded)

	reread, err := readMetadata(cfg.MetadataPath())
	require.NoError(t, err)
	assert.Equal(t, metadata, reread)
}

func TestMetadataRepository_LoadMissingIsEmpty(t *testing.T) {
	repo, cfg := setupTestRepository(t)
	assert.Empty(t, repo.Load())
	assert.False(t, repo.Exists())

	require.NoError(t, os.WriteFile(cfg.MetadataPath(), []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(cfg.BackupMetadataPath(), []byte("garbage"), 0o644))
	assert.Empty(t, repo.Load())
}

func TestMetadataRepository_LoadAppliesDefaults(t *testing.T) {
	repo, cfg := setupTestRepository(t)
	raw := `{"a.jpg": {"uploadDate": "2024-01-01T00:00:00.000Z", "type": "image"}}`
	require.NoError(t, os.WriteFile(cfg.MetadataPath(), []byte(raw), 0o644))

	loaded := repo.Load()
	require.Contains(t, loaded, "a.jpg")
	assert.Equal(t, models.DefaultCategory, loaded["a.jpg"].Category)
	assert.Equal(t, models.DefaultOrder, loaded["a.jpg"].Order)
	assert.False(t, loaded["a.jpg"].IsExternalLink())
}

func TestMetadataRepository_UpdateAbortsOnError(t *testing.T) {
	repo, _ := setupTestRepository(t)
	require.NoError(t, repo.Save(sampleMetadata()))

	err := repo.Update(func(metadata models.Metadata) error {
		delete(metadata, "1700000000000-abcd1234.jpg")
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")
	assert.Len(t, repo.Load(), 2)

	err = repo.Update(func(metadata models.Metadata) error {
		delete(metadata, "1700000000000-abcd1234.jpg")
		return nil
	})
	assert.NoError(t, err)
	assert.Len(t, repo.Load(), 1)
}

func TestMetadataRepository_SaveFailureKeepsPreviousFile(t *testing.T) {
	repo, cfg := setupTestRepository(t)
	require.NoError(t, repo.Save(sampleMetadata()))

	// A directory in place of the temp location's parent makes the write fail.
	blocked := NewMetadataRepository(&config.Configuration{Storage: config.StorageConfig{
		Path:               cfg.Storage.Path,
		MetadataFile:       filepath.Join(cfg.MetadataPath(), "nested.json"),
		BackupMetadataFile: "other.json",
	}}, logrus.New())
	assert.Error(t, blocked.Save(models.Metadata{}))
	assert.Len(t, repo.Load(), 2)
}
