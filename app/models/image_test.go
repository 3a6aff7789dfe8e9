package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUploadPath(t *testing.T) {
	uploadedAt := time.Date(2023, 4, 9, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "photos/2023/04/09/sunset.jpg", UploadPath(uploadedAt, "sunset.jpg"))

	// Single-digit months and days are zero padded.
	uploadedAt = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "photos/2024/01/02/a.png", UploadPath(uploadedAt, "a.png"))
}
