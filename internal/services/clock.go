package services

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Clock is injected wherever upload dates and snapshot names are stamped.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewClock() Clock {
	return systemClock{}
}

// NewFieldLogger exposes the configured logger to packages that only need to
// write log lines.
func NewFieldLogger(logService LogService) logrus.FieldLogger {
	return logService.Log
}
