package common

import "strings"

// AttachmentKind classifies an uploaded file for the message_type column
type AttachmentKind string

const (
	AttachmentKindImage AttachmentKind = "image"
	AttachmentKindFile  AttachmentKind = "file"
)

// String returns the string representation
func (ak AttachmentKind) String() string {
	return string(ak)
}

// IsValid checks if the attachment kind is valid
func (ak AttachmentKind) IsValid() bool {
	return ak == AttachmentKindImage || ak == AttachmentKindFile
}

// DetectAttachmentKind classifies by MIME type; anything that is not an
// image is sent as a plain file message.
func DetectAttachmentKind(mimeType string) AttachmentKind {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return AttachmentKindImage
	}
	return AttachmentKindFile
}
