package media

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"chat-files/c1/123-abc.jpg", "image/jpeg"},
		{"chat-files/c1/123-abc.JPEG", "image/jpeg"},
		{"photo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"pic.webp", "image/webp"},
		{"doc.pdf", "application/pdf"},
		{"notes.txt", "text/plain"},
		{"archive.zip", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, contentTypeFor(tt.filename))
		})
	}
}

func TestHTTPServer_Health(t *testing.T) {
	server := NewHTTPServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPServer_UnknownRoute(t *testing.T) {
	server := NewHTTPServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
