package services

import (
	"context"
	"io"

	"github.com/formcraft/formbuilder-api/internal/media"
	"github.com/formcraft/formbuilder-api/internal/models"
)

type FormService interface {
	List(ctx context.Context) ([]*models.Form, error)
	GetByID(ctx context.Context, id string) (*models.Form, error)
	Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error)
	Update(ctx context.Context, id string, req *UpdateFormRequest) (*models.Form, error)
	Delete(ctx context.Context, id string) error
}

type ResponseService interface {
	Submit(ctx context.Context, response *models.Response) (*models.Response, error)
	GetByID(ctx context.Context, id string) (*models.Response, error)
	ListByForm(ctx context.Context, formID string) ([]*models.Response, error)
}

type UploadService interface {
	UploadImage(ctx context.Context, file io.Reader, filename, contentType string, size int64) (*media.UploadResult, error)
	DeleteImage(ctx context.Context, identifier string) (*media.DeleteResult, error)
}

type ExportService interface {
	ExportResponses(ctx context.Context, formID string) (*ExportFile, error)
}

// ServiceManager hands each handler the service it needs
type ServiceManager interface {
	Form() FormService
	Response() ResponseService
	Upload() UploadService
	Export() ExportService
}
