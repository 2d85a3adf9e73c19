package dto

// MediaDTO is a listing entry: a single item, or a group summary when IsGroup is set.
type MediaDTO struct {
	ID             string `json:"id"`
	Filename       string `json:"filename"`
	URL            string `json:"url"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	UploadDate     string `json:"uploadDate"`
	Type           string `json:"type"`
	GroupID        string `json:"groupId,omitempty"`
	Order          int    `json:"order"`
	TitleImageID   string `json:"titleImageId,omitempty"`
	IsExternalLink bool   `json:"isExternalLink,omitempty"`
	EmbedURL       string `json:"embedUrl,omitempty"`
	VideoType      string `json:"videoType,omitempty"`
	IsTitle        bool   `json:"isTitle,omitempty"`
	IsGroup        bool   `json:"isGroup,omitempty"`
	FileCount      int    `json:"fileCount,omitempty"`
}

type GroupDTO struct {
	GroupID      string     `json:"groupId"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	UploadDate   string     `json:"uploadDate"`
	TitleImageID string     `json:"titleImageId"`
	Files        []MediaDTO `json:"files"`
}
