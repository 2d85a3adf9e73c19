package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const megabyte = 1024 * 1024

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Backup  BackupConfig  `yaml:"backup"`
}

type StorageConfig struct {
	Path               string `yaml:"path" validate:"required"`
	UploadsDir         string `yaml:"uploads_dir" validate:"required"`
	BackupsDir         string `yaml:"backups_dir" validate:"required"`
	MetadataFile       string `yaml:"metadata_file" validate:"required"`
	BackupMetadataFile string `yaml:"backup_metadata_file" validate:"required,nefield=MetadataFile"`
	QuotaMB            int64  `yaml:"quota_mb" validate:"gt=0"`
	MaxUploadMB        int64  `yaml:"max_upload_mb" validate:"gt=0"`
}

type ServerConfig struct {
	Port          int           `yaml:"port" validate:"gt=0,lte=65535"`
	Concurrency   int           `yaml:"concurrency" validate:"gte=0"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CorsConfig    CorsConfig    `yaml:"cors"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"size_limit" validate:"gt=0"`
}

type LogConfig struct {
	Level    string         `yaml:"level" validate:"omitempty,oneof=debug info warn error fatal panic"`
	Format   string         `yaml:"format" validate:"omitempty,oneof=json text"`
	Output   string         `yaml:"output" validate:"omitempty,oneof=stdout file"`
	LogPath  string         `yaml:"log_path" validate:"required_if=Output file"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAge     int  `yaml:"max_age"`
	Compress   bool `yaml:"compress"`
}

type CorsConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

type BackupConfig struct {
	// EveryUploads triggers a snapshot after every n-th successful upload; 0 disables it.
	EveryUploads int    `yaml:"every_uploads" validate:"gte=0"`
	Schedule     string `yaml:"schedule"`
}

// UploadsPath and the other path helpers resolve directories under Storage.Path.
func (c *Configuration) UploadsPath() string {
	return c.resolve(c.Storage.UploadsDir)
}

func (c *Configuration) BackupsPath() string {
	return c.resolve(c.Storage.BackupsDir)
}

func (c *Configuration) MetadataPath() string {
	return c.resolve(c.Storage.MetadataFile)
}

func (c *Configuration) BackupMetadataPath() string {
	return c.resolve(c.Storage.BackupMetadataFile)
}

func (c *Configuration) QuotaBytes() int64 {
	return c.Storage.QuotaMB * megabyte
}

func (c *Configuration) MaxUploadBytes() int64 {
	return c.Storage.MaxUploadMB * megabyte
}

func (c *Configuration) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Storage.Path, p)
}

func Default() *Configuration {
	return &Configuration{
		Storage: StorageConfig{
			Path:               "data",
			UploadsDir:         "uploads",
			BackupsDir:         "backups",
			MetadataFile:       "metadata.json",
			BackupMetadataFile: "metadata.backup.json",
			QuotaMB:            1024,
			MaxUploadMB:        100,
		},
		Server: ServerConfig{
			Port:          3000,
			RequestConfig: RequestConfig{SizeLimit: 110},
			LogConfig: LogConfig{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			CorsConfig: CorsConfig{AllowOrigins: "*"},
		},
		Backup: BackupConfig{EveryUploads: 5},
	}
}

// LoadConfiguration reads the yaml file on top of the defaults. A missing file
// yields the defaults.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	config := Default()
	data, err := os.ReadFile(configurationFilePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}
	if err = validator.New().Struct(config); err != nil {
		return nil, err
	}
	return config, nil
}
