// Package media serves uploaded chat attachments over HTTP, making the
// locators returned by the attachment store publicly dereferenceable.
package media

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"chatty/internal/dbmongo"
)

type HTTPServer struct {
	storage *dbmongo.AttachmentStorage
	router  *mux.Router
}

func NewHTTPServer(storage *dbmongo.AttachmentStorage) *HTTPServer {
	s := &HTTPServer{storage: storage}

	router := mux.NewRouter()
	router.HandleFunc("/media/chat-files/{chatID}/{fileName}", s.serveFile).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")
	s.router = router

	return s
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := fmt.Sprintf("chat-files/%s/%s", vars["chatID"], vars["fileName"])

	fileReader, attachment, err := s.storage.Open(r.Context(), path)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(attachment.Path))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", attachment.Size))

	if _, err := io.Copy(w, fileReader); err != nil {
		log.Printf("Error streaming file %s: %v", path, err)
	}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("media server is healthy"))
}
