package services

import (
	"log/slog"
	"time"

	"github.com/formcraft/formbuilder-api/internal/cache"
	"github.com/formcraft/formbuilder-api/internal/events"
	"github.com/formcraft/formbuilder-api/internal/media"
	"github.com/formcraft/formbuilder-api/internal/repositories"
)

// Dependencies groups everything the services are built from
type Dependencies struct {
	Repo           repositories.Repository
	Cache          cache.CacheService
	CacheTTL       time.Duration
	Publisher      events.EventPublisher
	MediaHost      media.Host
	MaxUploadBytes int64
	Logger         *slog.Logger
}

type serviceManager struct {
	form     FormService
	response ResponseService
	upload   UploadService
	export   ExportService
}

func NewServiceManager(deps Dependencies) ServiceManager {
	if deps.Cache == nil {
		deps.Cache = cache.NewNoopCache()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NoopEventPublisher{}
	}

	return &serviceManager{
		form:     NewFormService(deps.Repo, deps.Cache, deps.CacheTTL, deps.Publisher, deps.Logger.With("service", "form")),
		response: NewResponseService(deps.Repo, deps.Publisher, deps.Logger.With("service", "response")),
		upload:   NewUploadService(deps.MediaHost, deps.MaxUploadBytes, deps.Publisher, deps.Logger.With("service", "upload")),
		export:   NewExportService(deps.Repo, deps.Logger.With("service", "export")),
	}
}

func (m *serviceManager) Form() FormService {
	return m.form
}

func (m *serviceManager) Response() ResponseService {
	return m.response
}

func (m *serviceManager) Upload() UploadService {
	return m.upload
}

func (m *serviceManager) Export() ExportService {
	return m.export
}
