package services

import (
	"fmt"
	"sort"

	"Showcase/internal/config"
	"Showcase/internal/dto"
	"Showcase/internal/helpers"
	"Showcase/internal/mapper"
	"Showcase/internal/models"
	"Showcase/internal/repository"
	"github.com/sirupsen/logrus"
)

type GroupService interface {
	List() ([]dto.MediaDTO, error)
	GetGroup(groupID string) (*dto.GroupDTO, error)
	FindGroup(groupID string) (*models.Group, error)
	SetTitle(groupID string, titleImageID string) error
	SetOrder(groupID string, fileOrder []string) (int, error)
}

type groupServiceImpl struct {
	metadataRepository repository.MetadataRepository
	configuration      *config.Configuration
	logService         LogService
}

func NewGroupService(
	metadataRepository repository.MetadataRepository,
	configuration *config.Configuration,
	logService LogService,
) GroupService {
	return &groupServiceImpl{
		metadataRepository: metadataRepository,
		configuration:      configuration,
		logService:         logService,
	}
}

// Assemble splits the current items into ungrouped entries and groups. Stored
// files come from the on-disk listing (with default records when metadata is
// missing), links from metadata. The inputs are not modified.
func Assemble(metadata models.Metadata, files []helpers.MediaFile) ([]models.Entry, []models.Group) {
	entries := make([]models.Entry, 0, len(files)+len(metadata))
	onDisk := make(map[string]bool, len(files))
	for _, file := range files {
		onDisk[file.Name] = true
		record := metadata[file.Name]
		if record == nil || record.IsExternalLink() {
			record = newDefaultRecord(file)
		}
		entries = append(entries, models.Entry{ID: file.Name, Record: *record.Clone()})
	}
	for id, record := range metadata {
		if record.IsExternalLink() && !onDisk[id] {
			entries = append(entries, models.Entry{ID: id, Record: *record.Clone()})
		}
	}

	var individuals []models.Entry
	members := map[string][]models.Entry{}
	for _, entry := range entries {
		if entry.Record.GroupID == "" {
			individuals = append(individuals, entry)
			continue
		}
		members[entry.Record.GroupID] = append(members[entry.Record.GroupID], entry)
	}
	models.SortEntries(individuals)

	groups := make([]models.Group, 0, len(members))
	for groupID, groupMembers := range members {
		models.SortEntries(groupMembers)
		first := groupMembers[0]
		groups = append(groups, models.Group{
			ID:          groupID,
			Category:    first.Record.Category,
			Description: first.Record.Description,
			UploadDate:  first.Record.UploadDate,
			Members:     groupMembers,
			Title:       resolveTitle(groupMembers),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return individuals, groups
}

// resolveTitle honours the first titleImageId that names a member of the
// group; stale references fall back to the first member.
func resolveTitle(members []models.Entry) models.Entry {
	byID := make(map[string]models.Entry, len(members))
	for _, member := range members {
		byID[member.ID] = member
	}
	for _, member := range members {
		if title, ok := byID[member.Record.TitleImageID]; ok {
			return title
		}
	}
	return members[0]
}

func (s *groupServiceImpl) assemble() ([]models.Entry, []models.Group, error) {
	files, err := helpers.ListMediaFiles(s.configuration.UploadsPath())
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"path":  s.configuration.UploadsPath(),
			"error": err.Error(),
		}).Error("failed to list uploads")
		return nil, nil, fmt.Errorf("listing uploads: %w", err)
	}
	individuals, groups := Assemble(s.metadataRepository.Load(), files)
	return individuals, groups, nil
}

func (s *groupServiceImpl) List() ([]dto.MediaDTO, error) {
	individuals, groups, err := s.assemble()
	if err != nil {
		return nil, err
	}
	listing := mapper.ToMediaDTOs(individuals)
	for _, group := range groups {
		listing = append(listing, mapper.ToGroupSummaryDTO(group))
	}
	sort.SliceStable(listing, func(i, j int) bool {
		if listing[i].UploadDate != listing[j].UploadDate {
			return listing[i].UploadDate > listing[j].UploadDate
		}
		return listing[i].ID < listing[j].ID
	})
	return listing, nil
}

func (s *groupServiceImpl) FindGroup(groupID string) (*models.Group, error) {
	_, groups, err := s.assemble()
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			return &groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
}

func (s *groupServiceImpl) GetGroup(groupID string) (*dto.GroupDTO, error) {
	group, err := s.FindGroup(groupID)
	if err != nil {
		return nil, err
	}
	groupDTO := mapper.ToGroupDTO(*group)
	return &groupDTO, nil
}

func (s *groupServiceImpl) SetTitle(groupID string, titleImageID string) error {
	if titleImageID == "" {
		return fmt.Errorf("%w: titleImageId is required", ErrValidation)
	}
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		members := groupMemberIDs(metadata, groupID)
		if len(members) == 0 {
			return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		if title, ok := metadata[titleImageID]; !ok || title.GroupID != groupID {
			return fmt.Errorf("%w: %s is not a member of group %s", ErrValidation, titleImageID, groupID)
		}
		for _, id := range members {
			metadata[id].TitleImageID = titleImageID
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"group": groupID,
		"title": titleImageID,
	}).Info("group title updated")
	return nil
}

func (s *groupServiceImpl) SetOrder(groupID string, fileOrder []string) (int, error) {
	var updated int
	err := s.metadataRepository.Update(func(metadata models.Metadata) error {
		if len(groupMemberIDs(metadata, groupID)) == 0 {
			return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		for index, id := range fileOrder {
			record, ok := metadata[id]
			if !ok || record.GroupID != groupID {
				continue
			}
			record.Order = index
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"group":   groupID,
		"updated": updated,
	}).Info("group order updated")
	return updated, nil
}

func groupMemberIDs(metadata models.Metadata, groupID string) []string {
	if groupID == "" {
		return nil
	}
	var ids []string
	for id, record := range metadata {
		if record.GroupID == groupID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
