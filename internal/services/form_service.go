package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/formcraft/formbuilder-api/internal/cache"
	"github.com/formcraft/formbuilder-api/internal/events"
	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"gorm.io/datatypes"
	"golang.org/x/sync/singleflight"
)

type formService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	cacheTTL  time.Duration
	publisher events.EventPublisher
	logger    *slog.Logger
	group     singleflight.Group

	// versions counts invalidations per form id. A load only fills the cache
	// when no invalidation happened while it ran.
	mu       sync.Mutex
	versions map[string]uint64
}

func NewFormService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	cacheTTL time.Duration,
	publisher events.EventPublisher,
	logger *slog.Logger,
) FormService {
	return &formService{
		repo:      repo,
		cache:     cacheService,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    logger,
		versions:  make(map[string]uint64),
	}
}

func formCacheKey(id string) string {
	return "form:" + id
}

func (s *formService) List(ctx context.Context) ([]*models.Form, error) {
	forms, err := s.repo.Form().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}

// GetByID reads through the cache. Concurrent misses for the same id share
// one store lookup.
func (s *formService) GetByID(ctx context.Context, id string) (*models.Form, error) {
	var cached models.Form
	err := s.cache.Get(ctx, formCacheKey(id), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Form cache read failed", "form_id", id, "error", err)
	}

	version := s.version(id)
	flightKey := fmt.Sprintf("%s@%d", id, version)
	v, err, _ := s.group.Do(flightKey, func() (interface{}, error) {
		loadCtx := context.WithoutCancel(ctx)
		form, err := s.repo.Form().GetByID(loadCtx, id)
		if err != nil {
			return nil, err
		}
		s.fill(loadCtx, id, version, form)
		return form, nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return v.(*models.Form), nil
}

func (s *formService) Create(ctx context.Context, req *CreateFormRequest) (*models.Form, error) {
	s.logger.Debug("Received form payload", "payload", req)

	form, err := NormalizeForm(req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Normalized form payload", "form", form)

	if err := s.repo.Form().Create(ctx, form); err != nil {
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	s.logger.Info("Form created", "form_id", form.ID, "questions", len(form.Questions))
	s.publish(ctx, events.EventFormCreated, formEvent(form))

	return form, nil
}

func (s *formService) Update(ctx context.Context, id string, req *UpdateFormRequest) (*models.Form, error) {
	questions := datatypes.JSONSlice[models.Question](req.Questions)
	if questions == nil {
		questions = datatypes.JSONSlice[models.Question]{}
	}
	assignQuestionIDs(questions)

	form, err := s.repo.Form().Replace(ctx, id, &models.Form{
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   questions,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrFormNotFound
		case IsValidation(err):
			return nil, err
		}
		return nil, fmt.Errorf("failed to update form: %w", err)
	}

	s.invalidate(ctx, id)
	s.logger.Info("Form updated", "form_id", id)
	s.publish(ctx, events.EventFormUpdated, formEvent(form))

	return form, nil
}

// Delete removes the form only. Its responses stay retrievable by form id.
func (s *formService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Form().Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("failed to delete form: %w", err)
	}

	s.invalidate(ctx, id)
	s.logger.Info("Form deleted", "form_id", id)
	s.publish(ctx, events.EventFormDeleted, events.FormEvent{FormID: id})

	return nil
}

func (s *formService) version(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[id]
}

// fill caches form unless id was invalidated after version was read.
func (s *formService) fill(ctx context.Context, id string, version uint64, form *models.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[id] != version {
		return
	}
	if err := s.cache.Set(ctx, formCacheKey(id), form, s.cacheTTL); err != nil {
		s.logger.Warn("Form cache write failed", "form_id", id, "error", err)
	}
}

// invalidate is called after the store write succeeds.
func (s *formService) invalidate(ctx context.Context, id string) {
	s.mu.Lock()
	s.versions[id]++
	s.mu.Unlock()

	if err := s.cache.Delete(ctx, formCacheKey(id)); err != nil {
		s.logger.Warn("Form cache invalidation failed", "form_id", id, "error", err)
	}
}

func (s *formService) publish(ctx context.Context, eventType events.EventType, data interface{}) {
	publishBestEffort(ctx, s.publisher, s.logger, eventType, data)
}

func formEvent(form *models.Form) events.FormEvent {
	return events.FormEvent{
		FormID:        form.ID,
		Title:         form.Title,
		QuestionCount: len(form.Questions),
	}
}

// publishBestEffort never fails the request that triggered the event
func publishBestEffort(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, eventType events.EventType, data interface{}) {
	if err := publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		logger.Warn("Event publish failed", "event_type", eventType, "error", err)
	}
}
