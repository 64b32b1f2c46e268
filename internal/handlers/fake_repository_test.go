package handlers

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/formcraft/formbuilder-api/internal/media"
	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/formcraft/formbuilder-api/internal/validator"
)

// memoryRepository keeps documents in maps and runs the same schema gate
// as the postgres repositories.
type memoryRepository struct {
	mu        sync.Mutex
	schema    *validator.Validator
	clock     time.Time
	forms     map[string]*models.Form
	responses map[string]*models.Response
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		schema:    validator.New(),
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		forms:     map[string]*models.Form{},
		responses: map[string]*models.Response{},
	}
}

// tick returns strictly increasing timestamps so ordering is deterministic
func (r *memoryRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memoryRepository) Form() repositories.FormRepository         { return (*memoryForms)(r) }
func (r *memoryRepository) Response() repositories.ResponseRepository { return (*memoryResponses)(r) }
func (r *memoryRepository) Migrate(context.Context) error             { return nil }
func (r *memoryRepository) Ping(context.Context) error                { return nil }
func (r *memoryRepository) Close() error                              { return nil }

type memoryForms memoryRepository

func (f *memoryForms) Create(_ context.Context, form *models.Form) error {
	r := (*memoryRepository)(f)
	if err := r.schema.ValidateDocument(form); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := form.BeforeCreate(nil); err != nil {
		return err
	}
	if err := form.BeforeSave(nil); err != nil {
		return err
	}
	form.CreatedAt = r.tick()

	stored := *form
	r.forms[form.ID] = &stored
	return nil
}

func (f *memoryForms) GetByID(_ context.Context, id string) (*models.Form, error) {
	r := (*memoryRepository)(f)
	r.mu.Lock()
	defer r.mu.Unlock()

	form, ok := r.forms[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *form
	return &out, nil
}

func (f *memoryForms) List(context.Context) ([]*models.Form, error) {
	r := (*memoryRepository)(f)
	r.mu.Lock()
	defer r.mu.Unlock()

	forms := make([]*models.Form, 0, len(r.forms))
	for _, form := range r.forms {
		out := *form
		forms = append(forms, &out)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].CreatedAt.After(forms[j].CreatedAt) })
	return forms, nil
}

func (f *memoryForms) Replace(_ context.Context, id string, form *models.Form) (*models.Form, error) {
	r := (*memoryRepository)(f)
	if err := r.schema.ValidateDocument(form); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.forms[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	current.Title = form.Title
	current.Description = form.Description
	current.HeaderImage = form.HeaderImage
	current.Questions = form.Questions
	if err := current.BeforeSave(nil); err != nil {
		return nil, err
	}

	out := *current
	return &out, nil
}

func (f *memoryForms) Delete(_ context.Context, id string) error {
	r := (*memoryRepository)(f)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.forms[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.forms, id)
	return nil
}

type memoryResponses memoryRepository

func (s *memoryResponses) Create(_ context.Context, response *models.Response) error {
	r := (*memoryRepository)(s)
	if err := r.schema.ValidateDocument(response); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	response.SubmittedAt = r.tick()
	if err := response.BeforeCreate(nil); err != nil {
		return err
	}

	stored := *response
	r.responses[response.ID] = &stored
	return nil
}

func (s *memoryResponses) GetByIDWithForm(_ context.Context, id string) (*models.Response, error) {
	r := (*memoryRepository)(s)
	r.mu.Lock()
	defer r.mu.Unlock()

	response, ok := r.responses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *response
	if form, ok := r.forms[response.FormID]; ok {
		f := *form
		out.Form = &f
	}
	return &out, nil
}

func (s *memoryResponses) ListByForm(_ context.Context, formID string) ([]*models.Response, error) {
	r := (*memoryRepository)(s)
	r.mu.Lock()
	defer r.mu.Unlock()

	responses := make([]*models.Response, 0)
	for _, response := range r.responses {
		if response.FormID == formID {
			out := *response
			responses = append(responses, &out)
		}
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].SubmittedAt.After(responses[j].SubmittedAt) })
	return responses, nil
}

// memoryMediaHost records uploads without talking to a real host
type memoryMediaHost struct {
	mu      sync.Mutex
	uploads map[string][]byte
	fail    error
}

func newMemoryMediaHost() *memoryMediaHost {
	return &memoryMediaHost{uploads: map[string][]byte{}}
}

func (h *memoryMediaHost) Upload(_ context.Context, file io.Reader, filename, _ string) (*media.UploadResult, error) {
	if h.fail != nil {
		return nil, h.fail
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	identifier := "form-builder/" + filename
	h.uploads[identifier] = data
	return &media.UploadResult{URL: "https://media.example.com/" + identifier, Identifier: identifier}, nil
}

func (h *memoryMediaHost) Delete(_ context.Context, identifier string) (*media.DeleteResult, error) {
	if h.fail != nil {
		return nil, h.fail
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.uploads[identifier]; !ok {
		return &media.DeleteResult{Result: "not found"}, nil
	}
	delete(h.uploads, identifier)
	return &media.DeleteResult{Result: "ok"}, nil
}
