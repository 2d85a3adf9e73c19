package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"Showcase/internal/config"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// jpegBytes starts with the JPEG signature so content sniffing accepts it.
var jpegBytes = []byte("\xFF\xD8\xFF\xE0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")

// stepClock advances by one second on every reading.
type stepClock struct {
	mutex sync.Mutex
	now   time.Time
}

func (c *stepClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type testEnv struct {
	cfg       *config.Configuration
	log       LogService
	repo      repository.MetadataRepository
	clock     *stepClock
	backups   BackupService
	groups    GroupService
	media     MediaService
	exports   ExportService
	system    SystemService
	reconcile ReconcileService
}

func newTestEnv(t *testing.T, adjust ...func(cfg *config.Configuration)) *testEnv {
	cfg := config.Default()
	cfg.Storage.Path = t.TempDir()
	cfg.Backup.EveryUploads = 0
	for _, fn := range adjust {
		fn(cfg)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logService := LogService{Log: logger}

	env := &testEnv{
		cfg:   cfg,
		log:   logService,
		repo:  repository.NewMetadataRepository(cfg, logger),
		clock: &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	env.backups = NewBackupService(env.repo, cfg, env.clock, logService)
	env.groups = NewGroupService(env.repo, cfg, logService)
	env.media = NewMediaService(env.repo, env.backups, cfg, env.clock, logService)
	env.exports = NewExportService(env.groups, cfg, logService)
	env.system = NewSystemService(env.repo, cfg, env.clock)
	env.reconcile = NewReconcileService(env.repo, env.backups, cfg, logService)
	return env
}

// writeUpload places a file straight into the uploads directory.
func (e *testEnv) writeUpload(t *testing.T, name string, content []byte) {
	require.NoError(t, os.MkdirAll(e.cfg.UploadsPath(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.cfg.UploadsPath(), name), content, 0o644))
}

func (e *testEnv) uploadExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.cfg.UploadsPath(), name))
	return err == nil
}

func fileHeader(t *testing.T, fileName, contentType string, content []byte) *multipart.FileHeader {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	if contentType != "" {
		partHeader.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func imageRecord(groupID string, order int) *models.Record {
	return &models.Record{
		Category:   models.DefaultCategory,
		UploadDate: "2024-01-01T00:00:00.000Z",
		Type:       models.TypeImage,
		GroupID:    groupID,
		Order:      order,
	}
}
