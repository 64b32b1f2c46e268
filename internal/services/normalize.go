package services

import (
	"strings"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NormalizeForm shapes a create payload into a storable form. Only the
// fields of each question's own variant survive. Unknown types keep the
// common fields and are left for schema validation to reject.
func NormalizeForm(req *CreateFormRequest) (*models.Form, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "Form title is required", "required", req.Title)
	}

	questions := make(datatypes.JSONSlice[models.Question], 0, len(req.Questions))
	for _, raw := range req.Questions {
		questions = append(questions, normalizeQuestion(raw))
	}

	return &models.Form{
		Title:       title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   questions,
	}, nil
}

func normalizeQuestion(raw RawQuestion) models.Question {
	q := models.Question{
		ID:    uuid.NewString(),
		Type:  models.QuestionType(raw.Type),
		Title: raw.Title,
		Image: raw.Image,
	}
	if q.Title == "" {
		q.Title = models.DefaultQuestionTitle
	}

	switch q.Type {
	case models.QuestionCategorize:
		content := &models.CategorizeContent{Items: raw.Items}
		if raw.Categories != nil {
			// items are placed by respondents, never at authoring time
			content.Categories = make([]models.Category, 0, len(raw.Categories))
			for _, c := range raw.Categories {
				content.Categories = append(content.Categories, models.Category{Name: c.Name, Items: []string{}})
			}
		}
		q.Categorize = content
	case models.QuestionCloze:
		q.Cloze = &models.ClozeContent{
			Text:    raw.Text,
			Options: raw.Options,
		}
	case models.QuestionComprehension:
		q.Comprehension = &models.ComprehensionContent{
			Passage:  raw.Passage,
			Question: raw.Question,
			Options:  raw.Options,
		}
	}

	return q
}

// assignQuestionIDs gives every question without an id a fresh one
func assignQuestionIDs(questions []models.Question) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}
}
