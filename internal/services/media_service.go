package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"Showcase/internal/config"
	"Showcase/internal/dto"
	"Showcase/internal/helpers"
	"Showcase/internal/mapper"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UploadRequest struct {
	FileHeader  *multipart.FileHeader
	Category    string
	Description string
	GroupID     string
}

type LinkRequest struct {
	URL         string `json:"url" validate:"required,http_url"`
	Category    string `json:"category"`
	Description string `json:"description"`
	GroupID     string `json:"groupId"`
}

type MediaService interface {
	Upload(request UploadRequest) (*dto.MediaDTO, error)
	UploadLink(request LinkRequest) (*dto.MediaDTO, error)
	Delete(id string) (int, error)
}

type mediaServiceImpl struct {
	metadataRepository repository.MetadataRepository
	backupService      BackupService
	configuration      *config.Configuration
	clock              Clock
	logService         LogService
	uploads            atomic.Int64
}

func NewMediaService(
	metadataRepository repository.MetadataRepository,
	backupService BackupService,
	configuration *config.Configuration,
	clock Clock,
	logService LogService,
) MediaService {
	return &mediaServiceImpl{
		metadataRepository: metadataRepository,
		backupService:      backupService,
		configuration:      configuration,
		clock:              clock,
		logService:         logService,
	}
}

func (s *mediaServiceImpl) Upload(request UploadRequest) (*dto.MediaDTO, error) {
	header := request.FileHeader
	if header == nil {
		return nil, fmt.Errorf("%w: no file uploaded", ErrValidation)
	}
	mediaType := helpers.GetMediaType(header.Filename)
	if mediaType == "" {
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrValidation, filepath.Ext(header.Filename))
	}
	mimeType := s.detectMimeType(header)
	if !helpers.IsAllowedMimeType(mimeType) {
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrValidation, mimeType)
	}
	maxBytes := s.configuration.MaxUploadBytes()
	if header.Size > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds the %s limit", ErrTooLarge,
			humanize.IBytes(uint64(header.Size)), humanize.IBytes(uint64(maxBytes)))
	}

	uploadsPath := s.configuration.UploadsPath()
	if err := os.MkdirAll(uploadsPath, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}

	now := s.clock.Now()
	id := fmt.Sprintf("%d-%s%s", now.UnixMilli(), shortRandom(), helpers.GetExtension(header.Filename))
	path := filepath.Join(uploadsPath, id)
	size, err := helpers.SaveUploadedFile(header, path, maxBytes)
	if err != nil {
		if errors.Is(err, helpers.ErrFileTooLarge) {
			return nil, fmt.Errorf("%w: larger than %s", ErrTooLarge, humanize.IBytes(uint64(maxBytes)))
		}
		s.logService.Log.WithFields(logrus.Fields{
			"file":  header.Filename,
			"error": err.Error(),
		}).Error("failed to store upload")
		return nil, fmt.Errorf("storing upload: %w", err)
	}

	groupID := strings.TrimSpace(request.GroupID)
	var entry models.Entry
	err = s.metadataRepository.Update(func(metadata models.Metadata) error {
		record := &models.Record{
			Category:    categoryOrDefault(request.Category),
			Description: strings.TrimSpace(request.Description),
			UploadDate:  now.UTC().Format(models.TimeLayout),
			Type:        mediaType,
			GroupID:     groupID,
			Order:       helpers.ResolveOrder(header.Filename, groupID, metadata),
		}
		metadata[id] = record
		entry = models.Entry{ID: id, Record: *record.Clone()}
		return nil
	})
	if err != nil {
		if removeErr := os.Remove(path); removeErr != nil {
			s.logService.Log.WithField("error", removeErr.Error()).Warn("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("saving metadata: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":       id,
		"original": header.Filename,
		"type":     mediaType,
		"group":    groupID,
		"order":    entry.Record.Order,
		"size":     humanize.IBytes(uint64(size)),
	}).Info("file uploaded")

	s.afterUpload()
	mediaDTO := mapper.ToMediaDTO(entry)
	return &mediaDTO, nil
}

// detectMimeType trusts the declared type unless the client sent none or a
// generic one, in which case the content is sniffed.
func (s *mediaServiceImpl) detectMimeType(header *multipart.FileHeader) string {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	file, err := header.Open()
	if err != nil {
		return declared
	}
	defer file.Close()
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return declared
	}
	return detected.String()
}

// afterUpload snapshots the storage after every n-th successful upload.
func (s *mediaServiceImpl) afterUpload() {
	every := int64(s.configuration.Backup.EveryUploads)
	count := s.uploads.Add(1)
	if every <= 0 || count%every != 0 {
		return
	}
	if _, err := s.backupService.CreateBackup(); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"job":     "backup",
			"uploads": count,
			"error":   err.Error(),
		}).Warn("periodic backup failed")
	}
}

func (s *mediaServiceImpl) UploadLink(request LinkRequest) (*dto.MediaDTO, error) {
	rawURL := strings.TrimSpace(request.URL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}
	if !helpers.IsHTTPURL(rawURL) {
		return nil, fmt.Errorf("%w: %q is not an http(s) url", ErrValidation, rawURL)
	}

	link := helpers.ClassifyLink(rawURL)
	now := s.clock.Now()
	id := fmt.Sprintf("%s%d-%s", models.LinkPrefix, now.UnixMilli(), shortRandom())
	groupID := strings.TrimSpace(request.GroupID)

	var entry models.Entry
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		record := &models.Record{
			Category:    categoryOrDefault(request.Category),
			Description: strings.TrimSpace(request.Description),
			UploadDate:  now.UTC().Format(models.TimeLayout),
			Type:        models.TypeVideo,
			GroupID:     groupID,
			Order:       helpers.ResolveOrder(rawURL, groupID, metadata),
			Link:        &link,
		}
		metadata[id] = record
		entry = models.Entry{ID: id, Record: *record.Clone()}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving metadata: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":        id,
		"videoType": link.VideoType,
		"group":     groupID,
	}).Info("link registered")
	mediaDTO := mapper.ToMediaDTO(entry)
	return &mediaDTO, nil
}

// Delete dispatches on the id shape and returns how many items were removed.
func (s *mediaServiceImpl) Delete(id string) (int, error) {
	switch {
	case models.IsGroupID(id):
		return s.deleteGroup(id)
	case models.IsLinkID(id):
		return s.deleteLink(id)
	default:
		return s.deleteFile(id)
	}
}

func (s *mediaServiceImpl) deleteGroup(groupID string) (int, error) {
	var deleted int
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		for _, id := range groupMemberIDs(metadata, groupID) {
			if !metadata[id].IsExternalLink() {
				if err := s.removeStoredFile(id); err != nil {
					return err
				}
			}
			delete(metadata, id)
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"group": groupID,
		"count": deleted,
	}).Info("group deleted")
	return deleted, nil
}

func (s *mediaServiceImpl) deleteLink(id string) (int, error) {
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		if _, ok := metadata[id]; !ok {
			return fmt.Errorf("%w: link %s", ErrNotFound, id)
		}
		delete(metadata, id)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logService.Log.WithField("id", id).Info("link deleted")
	return 1, nil
}

func (s *mediaServiceImpl) deleteFile(id string) (int, error) {
	if !isPlainFileName(id) {
		return 0, fmt.Errorf("%w: invalid id %q", ErrValidation, id)
	}
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		_, hasRecord := metadata[id]
		_, statErr := os.Stat(filepath.Join(s.configuration.UploadsPath(), id))
		if os.IsNotExist(statErr) && !hasRecord {
			return fmt.Errorf("%w: file %s", ErrNotFound, id)
		}
		if err := s.removeStoredFile(id); err != nil {
			return err
		}
		delete(metadata, id)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logService.Log.WithField("id", id).Info("file deleted")
	return 1, nil
}

// removeStoredFile unlinks an upload; a file that is already gone is fine.
func (s *mediaServiceImpl) removeStoredFile(id string) error {
	err := helpers.DeleteFile(filepath.Join(s.configuration.UploadsPath(), id), false)
	if err != nil && !os.IsNotExist(err) {
		s.logService.Log.WithFields(logrus.Fields{
			"id":    id,
			"error": err.Error(),
		}).Error("failed to delete file")
		return fmt.Errorf("deleting %s: %w", id, err)
	}
	return nil
}

func categoryOrDefault(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultCategory
	}
	return category
}

func isPlainFileName(id string) bool {
	return id != "" && id != "." && id != ".." && filepath.Base(id) == id && !strings.ContainsAny(id, `/\`)
}

func shortRandom() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
