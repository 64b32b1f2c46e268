package validator

import (
	"testing"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestValidateDocument_Form(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		form      models.Form
		wantField string
	}{
		{
			name: "valid form",
			form: models.Form{
				Title: "Quiz",
				Questions: datatypes.JSONSlice[models.Question]{
					{Type: models.QuestionCloze, Title: "Fill in"},
					{Type: models.QuestionCategorize, Title: "Sort"},
					{Type: models.QuestionComprehension, Title: "Read"},
				},
			},
		},
		{
			name:      "missing title",
			form:      models.Form{},
			wantField: "title",
		},
		{
			name: "unknown question type",
			form: models.Form{
				Title: "Quiz",
				Questions: datatypes.JSONSlice[models.Question]{
					{Type: models.QuestionCloze},
					{Type: "essay"},
				},
			},
			wantField: "questions[1].type",
		},
		{
			name: "missing question type",
			form: models.Form{
				Title:     "Quiz",
				Questions: datatypes.JSONSlice[models.Question]{{Title: "no type"}},
			},
			wantField: "questions[0].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDocument(&tt.form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateDocument_Response(t *testing.T) {
	v := New()

	valid := models.Response{
		FormID: "form-1",
		Answers: datatypes.JSONSlice[models.Answer]{
			{QuestionID: "q1", QuestionType: models.QuestionCloze},
		},
	}
	assert.NoError(t, v.ValidateDocument(&valid))

	missingForm := models.Response{}
	err := v.ValidateDocument(&missingForm)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "formId", errs[0].Field)

	badAnswer := models.Response{
		FormID:  "form-1",
		Answers: datatypes.JSONSlice[models.Answer]{{QuestionType: "matching"}},
	}
	err = v.ValidateDocument(&badAnswer)
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "answers[0].questionId", errs[0].Field)
	assert.Equal(t, "answers[0].questionType", errs[1].Field)
	assert.Equal(t, "question_type", errs[1].Rule)
}
