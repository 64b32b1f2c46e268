package repositories

import (
	"context"
	"errors"

	"github.com/formcraft/formbuilder-api/internal/models"
)

// ErrNotFound is returned by every repository when the requested document
// does not exist.
var ErrNotFound = errors.New("document not found")

// FormRepository interface for form document operations
type FormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	GetByID(ctx context.Context, id string) (*models.Form, error)
	List(ctx context.Context) ([]*models.Form, error) // newest first by created_at
	// Replace overwrites the mutable fields of the stored form with id.
	Replace(ctx context.Context, id string, form *models.Form) (*models.Form, error)
	Delete(ctx context.Context, id string) error
}

// ResponseRepository interface for response document operations
type ResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	// GetByIDWithForm loads the response and its form; Form stays nil when
	// the referenced form no longer exists.
	GetByIDWithForm(ctx context.Context, id string) (*models.Response, error)
	ListByForm(ctx context.Context, formID string) ([]*models.Response, error) // newest first by submitted_at
}

// Repository is the store client handed to every service.
type Repository interface {
	Form() FormRepository
	Response() ResponseRepository

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
