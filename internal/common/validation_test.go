package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		messageType string
		expectError bool
	}{
		{"text with content", "hello", "text", false},
		{"empty type defaults to text", "hello", "", false},
		{"text without content", "", "text", true},
		{"text with only whitespace", "   ", "text", true},
		{"emoji without content", "", "emoji", true},
		{"image with empty content", "", "image", false},
		{"file with empty content", "", "file", false},
		{"unknown type", "hello", "video", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessage(tt.content, tt.messageType)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		size        int64
		expectError bool
	}{
		{"small image", "photo.png", 5 * 1024 * 1024, false},
		{"exactly at the limit", "big.bin", MaxUploadBytes, false},
		{"one byte over the limit", "big.bin", MaxUploadBytes + 1, true},
		{"eleven megabytes", "huge.mov", 11 * 1024 * 1024, true},
		{"empty file", "empty.txt", 0, true},
		{"missing name", "", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size, MaxUploadBytes)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpload_DefaultLimit(t *testing.T) {
	// A zero max falls back to the built-in 10MB cap.
	assert.NoError(t, ValidateUpload("a.txt", 5*1024*1024, 0))
	assert.Error(t, ValidateUpload("a.txt", 11*1024*1024, 0))
}

func TestAttachmentObjectName(t *testing.T) {
	name := AttachmentObjectName("My Photo.PNG")

	assert.True(t, strings.HasSuffix(name, ".png"), "keeps the original extension, lowercased: %s", name)
	assert.NotContains(t, name, " ")

	// Two derivations for the same input must differ (random suffix).
	other := AttachmentObjectName("My Photo.PNG")
	assert.NotEqual(t, name, other)
}

func TestAttachmentObjectName_NoExtension(t *testing.T) {
	name := AttachmentObjectName("README")
	assert.NotEmpty(t, name)
	assert.False(t, strings.HasSuffix(name, "."))
}

func TestAttachmentPath(t *testing.T) {
	path := AttachmentPath("c1", "123-abc.png")
	assert.Equal(t, "chat-files/c1/123-abc.png", path)
}
