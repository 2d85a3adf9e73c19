package services

import (
	"fmt"
	"math"

	"Showcase/internal/config"
	"Showcase/internal/dto"
	"Showcase/internal/helpers"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/dustin/go-humanize"
)

const (
	HealthHealthy  = "healthy"
	HealthDegraded = "degraded"
)

type SystemService interface {
	StorageUsage() (*dto.StorageDTO, error)
	Health() dto.HealthDTO
}

type systemServiceImpl struct {
	metadataRepository repository.MetadataRepository
	configuration      *config.Configuration
	clock              Clock
}

func NewSystemService(
	metadataRepository repository.MetadataRepository,
	configuration *config.Configuration,
	clock Clock,
) SystemService {
	return &systemServiceImpl{
		metadataRepository: metadataRepository,
		configuration:      configuration,
		clock:              clock,
	}
}

func (s *systemServiceImpl) StorageUsage() (*dto.StorageDTO, error) {
	files, err := helpers.ListMediaFiles(s.configuration.UploadsPath())
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}
	used, err := helpers.DirSize(s.configuration.UploadsPath())
	if err != nil {
		return nil, fmt.Errorf("measuring uploads: %w", err)
	}

	limit := s.configuration.QuotaBytes()
	available := limit - used
	if available < 0 {
		available = 0
	}
	percentage := math.Round(float64(used)/float64(limit)*10000) / 100

	return &dto.StorageDTO{
		Used:           used,
		Available:      available,
		Limit:          limit,
		Percentage:     percentage,
		UsedHuman:      humanize.IBytes(uint64(used)),
		AvailableHuman: humanize.IBytes(uint64(available)),
		LimitHuman:     humanize.IBytes(uint64(limit)),
		FileCount:      len(files),
	}, nil
}

func (s *systemServiceImpl) Health() dto.HealthDTO {
	health := dto.HealthDTO{
		Status:      HealthHealthy,
		Timestamp:   s.clock.Now().UTC().Format(models.TimeLayout),
		Directories: map[string]dto.DirectoryStatus{},
	}
	for name, path := range map[string]string{
		"uploads": s.configuration.UploadsPath(),
		"backups": s.configuration.BackupsPath(),
	} {
		exists, writable := helpers.IsWritableDir(path)
		health.Directories[name] = dto.DirectoryStatus{Path: path, Exists: exists, Writable: writable}
		if !exists || !writable {
			health.Status = HealthDegraded
		}
	}
	health.Metadata = dto.MetadataStatus{
		Exists: s.metadataRepository.Exists(),
		Items:  len(s.metadataRepository.Load()),
	}
	return health
}
