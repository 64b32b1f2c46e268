package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/formcraft/formbuilder-api/internal/validator"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponsePostgreSQL struct {
	db     *gorm.DB
	schema *validator.Validator
}

func NewResponsePostgreSQL(db *gorm.DB, schema *validator.Validator) repositories.ResponseRepository {
	return &ResponsePostgreSQL{
		db:     db,
		schema: schema,
	}
}

// Create stores the response as submitted. The form reference is not checked.
func (r *ResponsePostgreSQL) Create(ctx context.Context, response *models.Response) error {
	if err := r.schema.ValidateDocument(response); err != nil {
		return err
	}

	response.Form = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	return nil
}

func (r *ResponsePostgreSQL) GetByIDWithForm(ctx context.Context, id string) (*models.Response, error) {
	var response models.Response
	err := r.db.WithContext(ctx).
		Preload("Form").
		Where("id = ?", id).
		First(&response).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	return &response, nil
}

func (r *ResponsePostgreSQL) ListByForm(ctx context.Context, formID string) ([]*models.Response, error) {
	responses := make([]*models.Response, 0)
	err := r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Order("submitted_at DESC").
		Find(&responses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	return responses, nil
}
