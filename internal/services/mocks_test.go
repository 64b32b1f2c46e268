package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/formcraft/formbuilder-api/internal/media"
	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockFormRepository is a mock implementation of FormRepository
type MockFormRepository struct {
	mock.Mock
}

func (m *MockFormRepository) Create(ctx context.Context, form *models.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormRepository) GetByID(ctx context.Context, id string) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormRepository) List(ctx context.Context) ([]*models.Form, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Form), args.Error(1)
}

func (m *MockFormRepository) Replace(ctx context.Context, id string, form *models.Form) (*models.Form, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *models.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByIDWithForm(ctx context.Context, id string) (*models.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Response), args.Error(1)
}

func (m *MockResponseRepository) ListByForm(ctx context.Context, formID string) ([]*models.Response, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).([]*models.Response), args.Error(1)
}

// MockRepository bundles the two document repositories
type MockRepository struct {
	forms     *MockFormRepository
	responses *MockResponseRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		forms:     &MockFormRepository{},
		responses: &MockResponseRepository{},
	}
}

func (m *MockRepository) Form() repositories.FormRepository         { return m.forms }
func (m *MockRepository) Response() repositories.ResponseRepository { return m.responses }
func (m *MockRepository) Migrate(ctx context.Context) error         { return nil }
func (m *MockRepository) Ping(ctx context.Context) error            { return nil }
func (m *MockRepository) Close() error                              { return nil }

// MockMediaHost is a mock implementation of media.Host
type MockMediaHost struct {
	mock.Mock
}

func (m *MockMediaHost) Upload(ctx context.Context, file io.Reader, filename, contentType string) (*media.UploadResult, error) {
	args := m.Called(ctx, file, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.UploadResult), args.Error(1)
}

func (m *MockMediaHost) Delete(ctx context.Context, identifier string) (*media.DeleteResult, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.DeleteResult), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
