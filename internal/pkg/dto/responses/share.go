package responses

import "time"

type ImportResult struct {
	Lessons         int `json:"lessons"`
	SpecificLessons int `json:"specificLessons"`
	RemovedInvalid  int `json:"removedInvalid"`
}

type ExportArchive struct {
	FileName   string    `json:"fileName"`
	ObjectName string    `json:"objectName"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
