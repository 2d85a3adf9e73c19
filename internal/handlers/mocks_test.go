package handlers

import (
	"io"

	"Showcase/internal/dto"
	"Showcase/internal/models"
	"Showcase/internal/services"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(request services.UploadRequest) (*dto.MediaDTO, error) {
	args := m.Called(request)
	item, _ := args.Get(0).(*dto.MediaDTO)
	return item, args.Error(1)
}

func (m *MockMediaService) UploadLink(request services.LinkRequest) (*dto.MediaDTO, error) {
	args := m.Called(request)
	item, _ := args.Get(0).(*dto.MediaDTO)
	return item, args.Error(1)
}

func (m *MockMediaService) Delete(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) List() ([]dto.MediaDTO, error) {
	args := m.Called()
	return args.Get(0).([]dto.MediaDTO), args.Error(1)
}

func (m *MockGroupService) GetGroup(groupID string) (*dto.GroupDTO, error) {
	args := m.Called(groupID)
	group, _ := args.Get(0).(*dto.GroupDTO)
	return group, args.Error(1)
}

func (m *MockGroupService) FindGroup(groupID string) (*models.Group, error) {
	args := m.Called(groupID)
	group, _ := args.Get(0).(*models.Group)
	return group, args.Error(1)
}

func (m *MockGroupService) SetTitle(groupID string, titleImageID string) error {
	args := m.Called(groupID, titleImageID)
	return args.Error(0)
}

func (m *MockGroupService) SetOrder(groupID string, fileOrder []string) (int, error) {
	args := m.Called(groupID, fileOrder)
	return args.Int(0), args.Error(1)
}

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) CreateBackup() (*dto.BackupDTO, error) {
	args := m.Called()
	backup, _ := args.Get(0).(*dto.BackupDTO)
	return backup, args.Error(1)
}

func (m *MockBackupService) ListBackups() ([]dto.BackupDTO, error) {
	args := m.Called()
	return args.Get(0).([]dto.BackupDTO), args.Error(1)
}

func (m *MockBackupService) Restore(name string) (*dto.RestoreDTO, error) {
	args := m.Called(name)
	result, _ := args.Get(0).(*dto.RestoreDTO)
	return result, args.Error(1)
}

func (m *MockBackupService) LatestBackup() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

type MockSystemService struct {
	mock.Mock
}

func (m *MockSystemService) StorageUsage() (*dto.StorageDTO, error) {
	args := m.Called()
	usage, _ := args.Get(0).(*dto.StorageDTO)
	return usage, args.Error(1)
}

func (m *MockSystemService) Health() dto.HealthDTO {
	args := m.Called()
	return args.Get(0).(dto.HealthDTO)
}

func discardLogService() services.LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return services.LogService{Log: log}
}
