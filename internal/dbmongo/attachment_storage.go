package dbmongo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttachmentStorage stores chat attachments in GridFS under their full
// namespace path ("chat-files/<chatID>/<name>") and hands back a public
// URL served by the media server.
type AttachmentStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewAttachmentStorage(mongoClient *MongoClient, mediaBaseURL string) *AttachmentStorage {
	return &AttachmentStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: strings.TrimSuffix(mediaBaseURL, "/"),
	}
}

// Attachment describes one stored file.
type Attachment struct {
	Path       string    `json:"path"`        // namespace path, also the GridFS filename
	Size       int64     `json:"size"`        // file size in bytes
	UploadedAt time.Time `json:"uploaded_at"` // upload timestamp
}

// Put uploads the content and returns the public locator for it.
func (as *AttachmentStorage) Put(ctx context.Context, path string, content io.Reader) (string, error) {
	metadata := bson.M{
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := as.gridFS.OpenUploadStream(path, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, content); err != nil {
		return "", fmt.Errorf("file copy failed: %w", err)
	}

	return as.PublicURL(path), nil
}

// PublicURL resolves a namespace path to the locator the media server
// dereferences.
func (as *AttachmentStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s", as.baseURL, strings.TrimPrefix(path, "/"))
}

// Open returns a reader over a stored attachment plus its metadata.
func (as *AttachmentStorage) Open(ctx context.Context, path string) (io.Reader, *Attachment, error) {
	stream, err := as.gridFS.OpenDownloadStreamByName(path)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	attachment := &Attachment{
		Path:       fileInfo.Name,
		Size:       fileInfo.Length,
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, attachment, nil
}

// Delete removes all revisions of a stored attachment.
func (as *AttachmentStorage) Delete(ctx context.Context, path string) error {
	cursor, err := as.gridFS.Find(bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	for _, f := range files {
		if err := as.gridFS.Delete(f.ID); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
	}
	return nil
}
