package utils

import (
	"fmt"
	"path/filepath"
	"schoolbell-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateLockToken() string {
	return uuid.NewString()
}

// GenerateExportFileName returns name with the share extension, or a
// timestamped default when name is blank.
func GenerateExportFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("schedule_%s", time.Now().Format("20060102_150405"))
	}
	if HasShareFileExtension(name) {
		return name
	}
	return name + constvars.ShareFileExtension
}

func HasShareFileExtension(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), constvars.ShareFileExtension)
}
