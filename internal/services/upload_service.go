package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/formcraft/formbuilder-api/internal/events"
	"github.com/formcraft/formbuilder-api/internal/media"
)

type uploadService struct {
	host      media.Host
	maxBytes  int64
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewUploadService(host media.Host, maxBytes int64, publisher events.EventPublisher, logger *slog.Logger) UploadService {
	return &uploadService{
		host:      host,
		maxBytes:  maxBytes,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, file io.Reader, filename, contentType string, size int64) (*media.UploadResult, error) {
	if file == nil {
		return nil, ErrNoImageProvided
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !slices.Contains(media.AllowedFormats, ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImageFormat, filepath.Ext(filename))
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, size)
	}

	result, err := s.host.Upload(ctx, file, filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Image uploaded", "identifier", result.Identifier, "size", size)
	publishBestEffort(ctx, s.publisher, s.logger, events.EventImageUploaded, events.ImageEvent{
		Identifier: result.Identifier,
		URL:        result.URL,
	})

	return result, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, identifier string) (*media.DeleteResult, error) {
	identifier = strings.Trim(identifier, "/ ")
	if identifier == "" {
		return nil, ErrImageIdentifierMissing
	}

	result, err := s.host.Delete(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.Info("Image deleted", "identifier", identifier, "result", result.Result)
	publishBestEffort(ctx, s.publisher, s.logger, events.EventImageDeleted, events.ImageEvent{Identifier: identifier})

	return result, nil
}
