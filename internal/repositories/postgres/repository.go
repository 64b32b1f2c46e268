package postgres

import (
	"context"
	"fmt"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/formcraft/formbuilder-api/internal/repositories"
	"github.com/formcraft/formbuilder-api/internal/validator"
	"gorm.io/gorm"
)

type Repository struct {
	db       *gorm.DB
	form     repositories.FormRepository
	response repositories.ResponseRepository
}

func NewRepository(db *gorm.DB, schema *validator.Validator) repositories.Repository {
	return &Repository{
		db:       db,
		form:     NewFormPostgreSQL(db, schema),
		response: NewResponsePostgreSQL(db, schema),
	}
}

func (r *Repository) Form() repositories.FormRepository {
	return r.form
}

func (r *Repository) Response() repositories.ResponseRepository {
	return r.response
}

// Migrate creates or updates the forms and responses tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Form{}, &models.Response{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
