package dto

type StorageDTO struct {
	Used           int64   `json:"used"`
	Available      int64   `json:"available"`
	Limit          int64   `json:"limit"`
	Percentage     float64 `json:"percentage"`
	UsedHuman      string  `json:"usedHuman"`
	AvailableHuman string  `json:"availableHuman"`
	LimitHuman     string  `json:"limitHuman"`
	FileCount      int     `json:"fileCount"`
}

type DirectoryStatus struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

type HealthDTO struct {
	Status      string                     `json:"status"`
	Timestamp   string                     `json:"timestamp"`
	Directories map[string]DirectoryStatus `json:"directories"`
	Metadata    MetadataStatus             `json:"metadata"`
}

type MetadataStatus struct {
	Exists bool `json:"exists"`
	Items  int  `json:"items"`
}

type BackupDTO struct {
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
	FileCount int    `json:"fileCount"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"sizeHuman"`
}

type RestoreDTO struct {
	Name          string `json:"name"`
	FilesRestored int    `json:"filesRestored"`
	ItemsRestored int    `json:"itemsRestored"`
}
