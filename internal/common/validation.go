package common

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadBytes is the client-side attachment size cap. Uploads above
// it are rejected before any backend call.
const MaxUploadBytes = 10 * 1024 * 1024

var validMessageTypes = map[string]bool{
	"text":  true,
	"image": true,
	"file":  true,
	"emoji": true,
}

// ValidateMessage checks a message before it is sent. Text and emoji
// messages need content; image and file messages may have empty content
// because the payload lives in the attachment.
func ValidateMessage(content, messageType string) error {
	if messageType == "" {
		messageType = "text"
	}
	if !validMessageTypes[messageType] {
		return fmt.Errorf("invalid message type %q", messageType)
	}
	if (messageType == "text" || messageType == "emoji") && strings.TrimSpace(content) == "" {
		return errors.New("message content cannot be empty")
	}
	return nil
}

// ValidateUpload rejects oversized or nameless uploads client-side.
func ValidateUpload(filename string, size, maxBytes int64) error {
	if strings.TrimSpace(filename) == "" {
		return errors.New("file name cannot be empty")
	}
	if size <= 0 {
		return errors.New("file is empty")
	}
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	if size > maxBytes {
		return fmt.Errorf("file size %d exceeds the %d byte limit", size, maxBytes)
	}
	return nil
}

// AttachmentObjectName derives the stored name for an upload: current
// time plus a random suffix plus the original extension. Collision
// probability is negligible, not zero; nothing verifies uniqueness.
func AttachmentObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(10), ext)
}

// AttachmentPath scopes an object name to its chat's blob namespace.
func AttachmentPath(chatID, objectName string) string {
	return fmt.Sprintf("chat-files/%s/%s", chatID, objectName)
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
