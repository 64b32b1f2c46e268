package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/formcraft/formbuilder-api/internal/events"
	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
)

type responseService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewResponseService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger) ResponseService {
	return &responseService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit stores the response as sent. Neither formId nor questionId is
// checked against existing forms.
func (s *responseService) Submit(ctx context.Context, response *models.Response) (*models.Response, error) {
	response.ID = ""
	response.Form = nil

	if err := s.repo.Response().Create(ctx, response); err != nil {
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit response: %w", err)
	}

	s.logger.Info("Response submitted", "response_id", response.ID, "form_id", response.FormID)
	publishBestEffort(ctx, s.publisher, s.logger, events.EventResponseSubmitted, events.ResponseSubmittedEvent{
		ResponseID:  response.ID,
		FormID:      response.FormID,
		AnswerCount: len(response.Answers),
		SubmittedAt: response.SubmittedAt,
	})

	return response, nil
}

// GetByID returns the response with its form inlined. A response whose form
// was deleted comes back with Form nil.
func (s *responseService) GetByID(ctx context.Context, id string) (*models.Response, error) {
	response, err := s.repo.Response().GetByIDWithForm(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}
	return response, nil
}

func (s *responseService) ListByForm(ctx context.Context, formID string) ([]*models.Response, error) {
	responses, err := s.repo.Response().ListByForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}
