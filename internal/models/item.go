package models

import (
	"encoding/json"
	"strings"
)

const (
	TypeImage = "image"
	TypeVideo = "video"

	DefaultCategory = "fun"
	// DefaultOrder places an item after every explicitly ordered one.
	DefaultOrder = 999

	LinkPrefix  = "link-"
	GroupPrefix = "group-"

	// TimeLayout is the ISO-8601 form used for upload dates, always in UTC.
	TimeLayout = "2006-01-02T15:04:05.000Z"
)

const (
	VideoTypeYoutube     = "youtube"
	VideoTypeGoogleDrive = "googledrive"
	VideoTypeUnknown     = "unknown"
)

// ExternalLink holds the attributes only a registered link carries.
type ExternalLink struct {
	URL       string
	EmbedURL  string
	VideoType string
}

// Record is the metadata entry of a single item. Link is non-nil exactly when
// the item is an external link; otherwise the item is a stored file.
type Record struct {
	Category     string
	Description  string
	UploadDate   string
	Type         string
	GroupID      string
	Order        int
	TitleImageID string
	Link         *ExternalLink
}

func (r *Record) IsExternalLink() bool {
	return r != nil && r.Link != nil
}

// recordJSON is the on-disk shape of a record, flat so that existing sidecar
// files keep loading.
type recordJSON struct {
	Category       string `json:"category"`
	Description    string `json:"description"`
	UploadDate     string `json:"uploadDate"`
	Type           string `json:"type"`
	GroupID        string `json:"groupId,omitempty"`
	Order          *int   `json:"order,omitempty"`
	TitleImageID   string `json:"titleImageId,omitempty"`
	IsExternalLink bool   `json:"isExternalLink,omitempty"`
	URL            string `json:"url,omitempty"`
	EmbedURL       string `json:"embedUrl,omitempty"`
	VideoType      string `json:"videoType,omitempty"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	order := r.Order
	raw := recordJSON{
		Category:     r.Category,
		Description:  r.Description,
		UploadDate:   r.UploadDate,
		Type:         r.Type,
		GroupID:      r.GroupID,
		Order:        &order,
		TitleImageID: r.TitleImageID,
	}
	if r.Link != nil {
		raw.IsExternalLink = true
		raw.URL = r.Link.URL
		raw.EmbedURL = r.Link.EmbedURL
		raw.VideoType = r.Link.VideoType
	}
	return json.Marshal(raw)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		Category:     raw.Category,
		Description:  raw.Description,
		UploadDate:   raw.UploadDate,
		Type:         raw.Type,
		GroupID:      raw.GroupID,
		Order:        DefaultOrder,
		TitleImageID: raw.TitleImageID,
	}
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if raw.Order != nil {
		r.Order = *raw.Order
	}
	if raw.IsExternalLink {
		videoType := raw.VideoType
		if videoType == "" {
			videoType = VideoTypeUnknown
		}
		r.Link = &ExternalLink{URL: raw.URL, EmbedURL: raw.EmbedURL, VideoType: videoType}
	}
	return nil
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.Link != nil {
		link := *r.Link
		c.Link = &link
	}
	return &c
}

// Metadata maps item ids to their records.
type Metadata map[string]*Record

func (m Metadata) Clone() Metadata {
	c := make(Metadata, len(m))
	for id, record := range m {
		c[id] = record.Clone()
	}
	return c
}

// IsLinkID reports whether the id was issued for an external link.
func IsLinkID(id string) bool {
	return strings.HasPrefix(id, LinkPrefix)
}

// IsGroupID reports whether the id addresses a whole group.
func IsGroupID(id string) bool {
	return strings.HasPrefix(id, GroupPrefix)
}
