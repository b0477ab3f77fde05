//go:generate go run go.uber.org/mock/mockgen -source=images.go -destination=../mocks/mock_object_store.go -package=mocks
package helpers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	EventsFolder = "events"

	defaultImageName = "image"
	octetStream      = "application/octet-stream"
)

// ObjectStore stores uploaded blobs under a key and hands back a URL that
// resolves to them.
type ObjectStore interface {
	Upload(ctx context.Context, key string, content []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ImageUpload is an uploaded file held in memory for one request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// StorageKey builds "events/<unix-millis>_<name>" from the upload time and the
// client supplied file name. Only the base name is kept, and every byte outside
// [A-Za-z0-9._-] becomes '_' so the key is safe in object store URLs and
// Cloudinary public ids.
func StorageKey(now time.Time, filename string) string {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == ".." || name == "/" || name == "" {
		name = defaultImageName
	}
	return fmt.Sprintf("%s/%d_%s", EventsFolder, now.UnixMilli(), safeName(name))
}

func safeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '.', c == '-', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ResolveContentType keeps the declared MIME type unless it is missing or
// generic, in which case the content is sniffed.
func ResolveContentType(declared string, content []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != octetStream {
		return declared
	}
	return mimetype.Detect(content).String()
}
