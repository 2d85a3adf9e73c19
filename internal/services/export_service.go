package services

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"Showcase/internal/config"
	"Showcase/internal/helpers"
	"Showcase/internal/models"
	"github.com/sirupsen/logrus"
)

type ExportService interface {
	PrepareGroupExport(groupID string) (*GroupExport, error)
}

// GroupExport is a group resolved for download. Entries are already in
// display order; Write streams them into a zip archive.
type GroupExport struct {
	Filename string
	entries  []exportEntry
}

type exportEntry struct {
	name    string
	path    string
	content string
}

type exportServiceImpl struct {
	groupService  GroupService
	configuration *config.Configuration
	logService    LogService
}

func NewExportService(groupService GroupService, configuration *config.Configuration, logService LogService) ExportService {
	return &exportServiceImpl{
		groupService:  groupService,
		configuration: configuration,
		logService:    logService,
	}
}

func (s *exportServiceImpl) PrepareGroupExport(groupID string) (*GroupExport, error) {
	group, err := s.groupService.FindGroup(groupID)
	if err != nil {
		return nil, err
	}

	export := &GroupExport{Filename: ArchiveName(group.Description) + ".zip"}
	for _, member := range group.Members {
		index := len(export.entries) + 1
		if member.IsExternalLink() {
			export.entries = append(export.entries, exportEntry{
				name:    fmt.Sprintf("%d_link.txt", index),
				content: linkArtifact(member.Record.Link),
			})
			continue
		}
		path := filepath.Join(s.configuration.UploadsPath(), member.ID)
		if _, err := os.Stat(path); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"group": groupID,
				"id":    member.ID,
			}).Warn("skipping missing file in export")
			continue
		}
		export.entries = append(export.entries, exportEntry{
			name: fmt.Sprintf("%d%s", index, helpers.GetExtension(member.ID)),
			path: path,
		})
	}
	if len(export.entries) == 0 {
		return nil, fmt.Errorf("%w: group %s has no downloadable items", ErrNotFound, groupID)
	}
	return export, nil
}

func (e *GroupExport) Len() int {
	return len(e.entries)
}

func (e *GroupExport) Write(w io.Writer) error {
	zipWriter := zip.NewWriter(w)
	for _, entry := range e.entries {
		dst, err := zipWriter.Create(entry.name)
		if err != nil {
			return err
		}
		if entry.path == "" {
			if _, err := io.WriteString(dst, entry.content); err != nil {
				return err
			}
			continue
		}
		if err := copyFileTo(dst, entry.path); err != nil {
			return err
		}
	}
	return zipWriter.Close()
}

func copyFileTo(dst io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(dst, src)
	return err
}

func linkArtifact(link *models.ExternalLink) string {
	return fmt.Sprintf("Source URL: %s\nEmbed URL: %s\n", link.URL, link.EmbedURL)
}

// ArchiveName turns a group description into a file name: every rune that is
// not an ASCII letter or digit becomes "_", the result is lowercased, and an
// empty description yields "group".
func ArchiveName(description string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return '_'
	}, description)
	if name == "" {
		return "group"
	}
	return name
}
