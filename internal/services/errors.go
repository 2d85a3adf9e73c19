package services

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrTooLarge   = errors.New("file too large")

	ErrBackupInProgress = errors.New("backup is in progress")
)
