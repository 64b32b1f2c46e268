package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/formcraft/formbuilder-api/internal/validator"
	"gorm.io/gorm"
)

type FormPostgreSQL struct {
	db     *gorm.DB
	schema *validator.Validator
}

func NewFormPostgreSQL(db *gorm.DB, schema *validator.Validator) repositories.FormRepository {
	return &FormPostgreSQL{
		db:     db,
		schema: schema,
	}
}

// Create validates the document schema and inserts the form
func (f *FormPostgreSQL) Create(ctx context.Context, form *models.Form) error {
	if err := f.schema.ValidateDocument(form); err != nil {
		return err
	}

	if err := f.db.WithContext(ctx).Create(form).Error; err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	return nil
}

// GetByID retrieves a form by ID
func (f *FormPostgreSQL) GetByID(ctx context.Context, id string) (*models.Form, error) {
	var form models.Form
	err := f.db.WithContext(ctx).
		Where("id = ?", id).
		First(&form).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return &form, nil
}

// List retrieves all forms, newest first
func (f *FormPostgreSQL) List(ctx context.Context) ([]*models.Form, error) {
	forms := make([]*models.Form, 0)
	err := f.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&forms).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	return forms, nil
}

// Replace overwrites title, description, header image and questions of an
// existing form. Identity and creation time are kept.
func (f *FormPostgreSQL) Replace(ctx context.Context, id string, form *models.Form) (*models.Form, error) {
	if err := f.schema.ValidateDocument(form); err != nil {
		return nil, err
	}

	var current models.Form
	err := f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}

		current.Title = form.Title
		current.Description = form.Description
		current.HeaderImage = form.HeaderImage
		current.Questions = form.Questions

		return tx.Save(&current).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update form: %w", err)
	}

	return &current, nil
}

// Delete removes a form. Responses that reference it are left in place.
func (f *FormPostgreSQL) Delete(ctx context.Context, id string) error {
	result := f.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Form{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete form: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}
