package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Response is one respondent's submission against a form. FormID is not
// enforced as a foreign key: the referenced form may be deleted later.
type Response struct {
	ID          string                     `json:"id" gorm:"primaryKey;size:36"`
	FormID      string                     `json:"formId" gorm:"not null;size:36;index" validate:"required"`
	Answers     datatypes.JSONSlice[Answer] `json:"answers" gorm:"type:jsonb" validate:"dive"`
	SubmittedAt time.Time                  `json:"submittedAt" gorm:"index"`
	UserInfo    *UserInfo                  `json:"userInfo,omitempty" gorm:"serializer:json"`

	// Populated only when the response is loaded together with its form.
	Form *Form `json:"form,omitempty" gorm:"foreignKey:FormID" validate:"-"`
}

type UserInfo struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now()
	}
	if r.Answers == nil {
		r.Answers = datatypes.JSONSlice[Answer]{}
	}
	return nil
}
