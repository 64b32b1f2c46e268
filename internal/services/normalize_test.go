package services

import (
	"encoding/json"
	"testing"

	"github.com/formcraft/formbuilder-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCreateRequest(t *testing.T, body string) *CreateFormRequest {
	t.Helper()
	var req CreateFormRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestNormalizeForm_CategorizeBuckets(t *testing.T) {
	req := decodeCreateRequest(t, `{
		"title": "Sort",
		"questions": [{"type": "categorize", "categories": ["A", "B"], "items": ["x", "y"], "text": "stray"}]
	}`)

	form, err := NormalizeForm(req)
	require.NoError(t, err)
	require.Len(t, form.Questions, 1)

	q := form.Questions[0]
	require.NotNil(t, q.Categorize)
	assert.Equal(t, []models.Category{{Name: "A", Items: []string{}}, {Name: "B", Items: []string{}}}, q.Categorize.Categories)
	assert.Equal(t, []string{"x", "y"}, q.Categorize.Items)
	assert.Nil(t, q.Cloze)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "`+q.ID+`",
		"type": "categorize",
		"title": "Untitled Question",
		"categories": [{"name": "A", "items": []}, {"name": "B", "items": []}],
		"items": ["x", "y"]
	}`, string(data))
}

func TestNormalizeForm_CategoryObjectsLoseTheirItems(t *testing.T) {
	req := decodeCreateRequest(t, `{
		"title": "Sort",
		"questions": [{"type": "categorize", "categories": [{"name": "A", "items": ["x"]}]}]
	}`)

	form, err := NormalizeForm(req)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{Name: "A", Items: []string{}}}, form.Questions[0].Categorize.Categories)
}

func TestNormalizeForm_VariantFields(t *testing.T) {
	req := decodeCreateRequest(t, `{
		"title": "  Quiz  ",
		"questions": [
			{"type": "cloze", "title": "Fill", "image": "https://img/1.png", "text": "The sky is ___", "options": ["blue", "red"], "passage": "stray"},
			{"type": "comprehension", "passage": "Once upon a time", "question": "Who?", "options": ["me", "you"]}
		]
	}`)

	form, err := NormalizeForm(req)
	require.NoError(t, err)
	assert.Equal(t, "Quiz", form.Title)
	require.Len(t, form.Questions, 2)

	cloze := form.Questions[0]
	assert.Equal(t, "Fill", cloze.Title)
	assert.Equal(t, "https://img/1.png", cloze.Image)
	require.NotNil(t, cloze.Cloze)
	assert.Equal(t, "The sky is ___", cloze.Cloze.Text)
	assert.Equal(t, []string{"blue", "red"}, cloze.Cloze.Options)
	assert.Nil(t, cloze.Comprehension)

	comp := form.Questions[1]
	assert.Equal(t, models.DefaultQuestionTitle, comp.Title)
	require.NotNil(t, comp.Comprehension)
	assert.Equal(t, "Once upon a time", comp.Comprehension.Passage)
	assert.Equal(t, "Who?", comp.Comprehension.Question)
	assert.Equal(t, []string{"me", "you"}, comp.Comprehension.Options)
}

func TestNormalizeForm_UnknownTypeKeepsCommonFields(t *testing.T) {
	req := decodeCreateRequest(t, `{"title": "Quiz", "questions": [{"type": "essay", "text": "Write"}]}`)

	form, err := NormalizeForm(req)
	require.NoError(t, err)

	q := form.Questions[0]
	assert.Equal(t, models.QuestionType("essay"), q.Type)
	assert.Nil(t, q.Categorize)
	assert.Nil(t, q.Cloze)
	assert.Nil(t, q.Comprehension)
}

func TestNormalizeForm_BlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		form, err := NormalizeForm(&CreateFormRequest{Title: title})

		assert.Nil(t, form)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "title", ve.Field)
		assert.Equal(t, "Form title is required", ve.Message)
		assert.Equal(t, "required", ve.Rule)
		assert.True(t, IsValidation(err))
	}
}

func TestNormalizeForm_QuestionCountAndIDs(t *testing.T) {
	req := &CreateFormRequest{
		Title: "Quiz",
		Questions: []RawQuestion{
			{Type: "cloze"},
			{Type: "cloze"},
			{Type: "categorize"},
		},
	}

	form, err := NormalizeForm(req)
	require.NoError(t, err)
	require.Len(t, form.Questions, len(req.Questions))

	seen := map[string]bool{}
	for _, q := range form.Questions {
		assert.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestNormalizeForm_NoQuestions(t *testing.T) {
	form, err := NormalizeForm(&CreateFormRequest{Title: "Empty"})
	require.NoError(t, err)
	assert.NotNil(t, form.Questions)
	assert.Empty(t, form.Questions)
}
