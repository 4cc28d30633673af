package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentKind_String(t *testing.T) {
	assert.Equal(t, "image", AttachmentKindImage.String())
	assert.Equal(t, "file", AttachmentKindFile.String())
}

func TestAttachmentKind_IsValid(t *testing.T) {
	assert.True(t, AttachmentKindImage.IsValid())
	assert.True(t, AttachmentKindFile.IsValid())

	invalidKind := AttachmentKind("invalid")
	assert.False(t, invalidKind.IsValid())
}

func TestDetectAttachmentKind_Images(t *testing.T) {
	imageTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"IMAGE/PNG",
	}

	for _, mimeType := range imageTypes {
		result := DetectAttachmentKind(mimeType)
		assert.Equal(t, AttachmentKindImage, result, "Failed for MIME type: %s", mimeType)
	}
}

func TestDetectAttachmentKind_FileFallback(t *testing.T) {
	fileTypes := []string{
		"application/pdf",
		"text/plain",
		"audio/mp3",
		"video/mp4",
		"unknown/type",
		"",
	}

	for _, mimeType := range fileTypes {
		result := DetectAttachmentKind(mimeType)
		assert.Equal(t, AttachmentKindFile, result, "Failed for MIME type: %s", mimeType)
	}
}
