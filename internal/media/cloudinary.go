package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/formcraft/formbuilder-api/internal/config"
)

type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryHost(cfg config.MediaConfig) (*CloudinaryHost, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryHost{cld: cld, folder: cfg.Folder}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, file io.Reader, filename, contentType string) (*UploadResult, error) {
	resp, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         h.folder,
		AllowedFormats: api.CldAPIArray(AllowedFormats),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}

	return &UploadResult{
		URL:        resp.SecureURL,
		Identifier: resp.PublicID,
	}, nil
}

func (h *CloudinaryHost) Delete(ctx context.Context, identifier string) (*DeleteResult, error) {
	resp, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: identifier})
	if err != nil {
		return nil, fmt.Errorf("cloudinary delete failed: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary delete failed: %s", resp.Error.Message)
	}

	return &DeleteResult{Result: resp.Result}, nil
}
