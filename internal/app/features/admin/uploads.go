// internal/app/features/admin/uploads.go
package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
)

// maxUploadSize caps image uploads at 10MB.
const maxUploadSize = 10 << 20

// Storage key prefixes, one per collection.
const (
	blogThumbnailPrefix = "blog-thumbnails"
	serviceImagePrefix  = "service-images"
	projectImagePrefix  = "project-images"
)

// uploadResult reports where an optional image upload ended up.
type uploadResult struct {
	URL  string // public URL, "" when no file was supplied
	Path string // storage key for the compensating delete, "" when no file
}

// uploadImage stores an optional image from the multipart field named
// field under prefix. Keys are "<prefix>/<epoch-millis>-<original-name>",
// so repeated uploads of the same filename never collide. A request
// without that field is not an error; the zero result is returned.
func (h *Handler) uploadImage(ctx context.Context, r *http.Request, field, prefix string) (uploadResult, error) {
	file, header, err := r.FormFile(field)
	if err != nil || header == nil || header.Size == 0 {
		return uploadResult{}, nil
	}
	defer file.Close()

	path := fmt.Sprintf("%s/%d-%s", prefix, time.Now().UnixMilli(), header.Filename)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.fileStorage.Put(ctx, path, file, opts); err != nil {
		return uploadResult{}, err
	}

	return uploadResult{
		URL:  h.fileStorage.URL(path),
		Path: path,
	}, nil
}

// discardUpload removes a blob uploaded earlier in the same request.
// Used when the record insert fails after the upload succeeded.
func (h *Handler) discardUpload(ctx context.Context, res uploadResult) {
	if res.Path == "" {
		return
	}
	_ = h.fileStorage.Delete(ctx, res.Path)
}

// imageOr returns the uploaded URL, or fallback when nothing was uploaded.
func imageOr(res uploadResult, fallback string) string {
	if res.URL != "" {
		return res.URL
	}
	return fallback
}
