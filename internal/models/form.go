package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Form struct {
	ID          string                       `json:"id" gorm:"primaryKey;size:36"`
	Title       string                       `json:"title" gorm:"type:text;not null" validate:"required"`
	Description string                       `json:"description" gorm:"type:text"`
	HeaderImage string                       `json:"headerImage" gorm:"type:text"`
	Questions   datatypes.JSONSlice[Question] `json:"questions" gorm:"type:jsonb" validate:"dive"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Form) TableName() string {
	return "forms"
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Questions == nil {
		f.Questions = datatypes.JSONSlice[Question]{}
	}
	return nil
}

// BeforeSave refreshes UpdatedAt on every write, creates included.
func (f *Form) BeforeSave(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return nil
}
