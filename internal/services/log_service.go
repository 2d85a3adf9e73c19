package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Showcase/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		return
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	logConfig := configuration.Server.LogConfig
	switch logConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if logConfig.LogPath == "" {
			fmt.Fprintln(os.Stderr, "file output requires log_path to be set")
			return
		}
		logFolder := strings.TrimRight(logConfig.LogPath, "/")
		if err := os.MkdirAll(logFolder, 0o755); err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(logFolder, "showcase.log"),
			MaxSize:    logConfig.Rotation.MaxSize,
			MaxBackups: logConfig.Rotation.MaxBackups,
			MaxAge:     logConfig.Rotation.MaxAge,
			Compress:   logConfig.Rotation.Compress,
		})
	}
}
