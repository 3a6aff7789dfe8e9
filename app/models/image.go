package models

import (
	"fmt"
	"time"
)

// UploadPath returns the storage path for a file uploaded at the given
// time. The photos/YYYY/MM/DD/<file> layout is a persisted contract;
// existing media lives under it.
func UploadPath(uploadedAt time.Time, filename string) string {
	return fmt.Sprintf("photos/%04d/%02d/%02d/%s",
		uploadedAt.Year(), int(uploadedAt.Month()), uploadedAt.Day(), filename)
}

// Validate checks if the image meets all validation requirements
func (i *Image) Validate() error {
	return validate.Struct(i)
}
