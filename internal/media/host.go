package media

import (
	"context"
	"fmt"
	"io"

	"github.com/formcraft/formbuilder-api/internal/config"
)

// AllowedFormats lists the image extensions accepted by every host
var AllowedFormats = []string{"jpg", "jpeg", "png", "gif", "webp"}

// UploadResult is what the API hands back after a successful upload
type UploadResult struct {
	URL        string `json:"url"`
	Identifier string `json:"identifier"`
}

// DeleteResult is the host's raw answer to a delete request
type DeleteResult struct {
	Result string `json:"result"`
}

// Host stores and deletes images on an external service
type Host interface {
	Upload(ctx context.Context, file io.Reader, filename, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, identifier string) (*DeleteResult, error)
}

// NewHost builds the host named by MEDIA_HOST
func NewHost(cfg config.MediaConfig) (Host, error) {
	switch cfg.Provider {
	case "cloudinary":
		return NewCloudinaryHost(cfg)
	case "supabase":
		return NewSupabaseHost(cfg)
	default:
		return nil, fmt.Errorf("unknown media host %q", cfg.Provider)
	}
}

// unavailableHost stands in when no host could be configured. Every call
// fails, which the API reports as a server error.
type unavailableHost struct {
	err error
}

func NewUnavailableHost(err error) Host {
	return unavailableHost{err: err}
}

func (h unavailableHost) Upload(context.Context, io.Reader, string, string) (*UploadResult, error) {
	return nil, fmt.Errorf("media host unavailable: %w", h.err)
}

func (h unavailableHost) Delete(context.Context, string) (*DeleteResult, error) {
	return nil, fmt.Errorf("media host unavailable: %w", h.err)
}
