package mapper

import (
	"Showcase/internal/dto"
	"Showcase/internal/models"
)

const UploadsURLPrefix = "/uploads/"

func ToMediaDTO(entry models.Entry) dto.MediaDTO {
	record := entry.Record
	mediaDTO := dto.MediaDTO{
		ID:           entry.ID,
		Filename:     entry.ID,
		URL:          UploadsURLPrefix + entry.ID,
		Category:     record.Category,
		Description:  record.Description,
		UploadDate:   record.UploadDate,
		Type:         record.Type,
		GroupID:      record.GroupID,
		Order:        record.Order,
		TitleImageID: record.TitleImageID,
	}
	if record.Link != nil {
		mediaDTO.URL = record.Link.URL
		mediaDTO.IsExternalLink = true
		mediaDTO.EmbedURL = record.Link.EmbedURL
		mediaDTO.VideoType = record.Link.VideoType
	}
	return mediaDTO
}

func ToMediaDTOs(entries []models.Entry) []dto.MediaDTO {
	mediaDTOs := make([]dto.MediaDTO, 0, len(entries))
	for _, entry := range entries {
		mediaDTOs = append(mediaDTOs, ToMediaDTO(entry))
	}
	return mediaDTOs
}

// ToGroupSummaryDTO represents a group in the top-level listing through its title item.
func ToGroupSummaryDTO(group models.Group) dto.MediaDTO {
	summary := ToMediaDTO(group.Title)
	summary.ID = group.ID
	summary.GroupID = group.ID
	summary.Category = group.Category
	summary.Description = group.Description
	summary.UploadDate = group.UploadDate
	summary.TitleImageID = group.Title.ID
	summary.IsGroup = true
	summary.FileCount = len(group.Members)
	return summary
}

func ToGroupDTO(group models.Group) dto.GroupDTO {
	files := make([]dto.MediaDTO, 0, len(group.Members))
	for _, member := range group.Members {
		file := ToMediaDTO(member)
		file.IsTitle = member.ID == group.Title.ID
		files = append(files, file)
	}
	return dto.GroupDTO{
		GroupID:      group.ID,
		Category:     group.Category,
		Description:  group.Description,
		UploadDate:   group.UploadDate,
		TitleImageID: group.Title.ID,
		Files:        files,
	}
}
