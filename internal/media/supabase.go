package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/formcraft/formbuilder-api/internal/config"
	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// SupabaseHost keeps images in a public Supabase Storage bucket. The object
// path doubles as the identifier.
type SupabaseHost struct {
	client *storage.Client
	bucket string
	folder string
}

func NewSupabaseHost(cfg config.MediaConfig) (*SupabaseHost, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, errors.New("supabase credentials are not configured")
	}

	client := storage.NewClient(strings.TrimRight(cfg.SupabaseURL, "/")+"/storage/v1", cfg.SupabaseKey, nil)

	return &SupabaseHost{
		client: client,
		bucket: cfg.SupabaseBucket,
		folder: cfg.Folder,
	}, nil
}

func (h *SupabaseHost) objectPath(filename string) string {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if h.folder == "" {
		return name
	}
	return path.Join(h.folder, name)
}

func (h *SupabaseHost) Upload(_ context.Context, file io.Reader, filename, contentType string) (*UploadResult, error) {
	objectPath := h.objectPath(filename)

	upsert := false
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := h.client.UploadFile(h.bucket, objectPath, file, options); err != nil {
		return nil, fmt.Errorf("supabase upload failed: %w", err)
	}

	publicURL := h.client.GetPublicUrl(h.bucket, objectPath)
	return &UploadResult{
		URL:        publicURL.SignedURL,
		Identifier: objectPath,
	}, nil
}

func (h *SupabaseHost) Delete(_ context.Context, identifier string) (*DeleteResult, error) {
	removed, err := h.client.RemoveFile(h.bucket, []string{identifier})
	if err != nil {
		return nil, fmt.Errorf("supabase delete failed: %w", err)
	}

	// mirrors Cloudinary's destroy answer
	if len(removed) == 0 {
		return &DeleteResult{Result: "not found"}, nil
	}
	return &DeleteResult{Result: "ok"}, nil
}
