package helpers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"Showcase/internal/models"
)

// ErrFileTooLarge is returned when a copy exceeds its byte limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".webm": true, ".mkv": true, ".m4v": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":       true,
	"image/jpg":        true,
	"image/png":        true,
	"image/gif":        true,
	"image/webp":       true,
	"image/bmp":        true,
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/webm":       true,
	"video/x-matroska": true,
	"video/x-m4v":      true,
}

// MediaFile is a recognised media file found in the uploads directory.
type MediaFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}

func GetExtension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}

// GetMediaType returns "image" or "video" for a recognised extension and ""
// for anything else.
func GetMediaType(fileName string) string {
	ext := GetExtension(fileName)
	switch {
	case imageExtensions[ext]:
		return models.TypeImage
	case videoExtensions[ext]:
		return models.TypeVideo
	}
	return ""
}

func IsMediaFile(fileName string) bool {
	return GetMediaType(fileName) != ""
}

func IsAllowedMimeType(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return allowedMimeTypes[mimeType]
}

// ListMediaFiles returns the recognised media files directly inside dir,
// sorted by name. A missing directory yields no files.
func ListMediaFiles(dir string) ([]MediaFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() || !IsMediaFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, MediaFile{Name: entry.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// SaveUploadedFile copies the multipart file to destinationPath, failing with
// ErrFileTooLarge once more than maxBytes have been read. Partial files are removed.
func SaveUploadedFile(fileHeader *multipart.FileHeader, destinationPath string, maxBytes int64) (written int64, err error) {
	src, err := fileHeader.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.OpenFile(destinationPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer func() {
		closeErr := dst.Close()
		if err == nil && closeErr != nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(destinationPath)
		}
	}()

	written, err = io.Copy(dst, io.LimitReader(src, maxBytes+1))
	if err != nil {
		return written, err
	}
	if written > maxBytes {
		return written, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, maxBytes)
	}
	return written, nil
}

func DeleteFile(path string, recurse bool) error {
	if recurse {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// DirSize sums the sizes of all regular files below dir.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// IsWritableDir checks that dir exists and a file can be created inside it.
func IsWritableDir(dir string) (exists bool, writable bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, false
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return true, false
	}
	probe.Close()
	os.Remove(probe.Name())
	return true, true
}
