package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_UnmarshalKeepsOnlyVariantFields(t *testing.T) {
	raw := `{
		"id": "q1",
		"type": "cloze",
		"title": "Fill the blank",
		"text": "The sky is ___",
		"options": ["blue", "red"],
		"passage": "ignored",
		"categories": ["A"],
		"somethingElse": true
	}`

	var q Question
	require.NoError(t, json.Unmarshal([]byte(raw), &q))

	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, QuestionCloze, q.Type)
	require.NotNil(t, q.Cloze)
	assert.Equal(t, "The sky is ___", q.Cloze.Text)
	assert.Equal(t, []string{"blue", "red"}, q.Cloze.Options)
	assert.Nil(t, q.Categorize)
	assert.Nil(t, q.Comprehension)

	out, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotContains(t, decoded, "passage")
	assert.NotContains(t, decoded, "categories")
	assert.NotContains(t, decoded, "somethingElse")
	assert.Equal(t, "The sky is ___", decoded["text"])
}

func TestQuestion_CategorizeEncodesEmptyBuckets(t *testing.T) {
	q := Question{
		ID:    "q1",
		Type:  QuestionCategorize,
		Title: "Sort",
		Categorize: &CategorizeContent{
			Categories: []Category{{Name: "A"}, {Name: "B", Items: []string{}}},
			Items:      []string{"x", "y"},
		},
	}

	out, err := json.Marshal(q)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "q1",
		"type": "categorize",
		"title": "Sort",
		"categories": [{"name": "A", "items": []}, {"name": "B", "items": []}],
		"items": ["x", "y"]
	}`, string(out))
}

func TestQuestion_UnknownTypeCarriesCommonFieldsOnly(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"type":"essay","title":"T","image":"i.png","text":"x"}`), &q))

	assert.Equal(t, QuestionType("essay"), q.Type)
	assert.False(t, q.Type.Valid())
	assert.Nil(t, q.Categorize)
	assert.Nil(t, q.Cloze)
	assert.Nil(t, q.Comprehension)

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"essay","title":"T","image":"i.png"}`, string(out))
}

func TestCategory_AcceptsNameOrObject(t *testing.T) {
	var cats []Category
	require.NoError(t, json.Unmarshal([]byte(`["A", {"name": "B", "items": ["x"]}, {"name": "C"}]`), &cats))

	assert.Equal(t, []Category{
		{Name: "A", Items: []string{}},
		{Name: "B", Items: []string{"x"}},
		{Name: "C", Items: []string{}},
	}, cats)

	assert.Error(t, json.Unmarshal([]byte(`[42]`), &cats))
}

func TestAnswer_RoundTripByVariant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "categorize",
			raw:  `{"questionId":"q1","questionType":"categorize","categorizations":[{"category":"A","items":["x"]}]}`,
		},
		{
			name: "cloze",
			raw:  `{"questionId":"q2","questionType":"cloze","blankAnswers":[{"blankId":"1","answer":"blue"}]}`,
		},
		{
			name: "comprehension",
			raw:  `{"questionId":"q3","questionType":"comprehension","mcqAnswers":[{"questionIndex":0,"selectedOption":2}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Answer
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))

			out, err := json.Marshal(a)
			require.NoError(t, err)
			assert.JSONEq(t, tt.raw, string(out))
		})
	}
}

func TestAnswer_DropsFieldsOfOtherVariants(t *testing.T) {
	var a Answer
	raw := `{"questionId":"q1","questionType":"cloze","blankAnswers":[{"blankId":"1","answer":"blue"}],"mcqAnswers":[{"questionIndex":0,"selectedOption":1}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	require.NotNil(t, a.Cloze)
	assert.Nil(t, a.Comprehension)
	assert.Equal(t, []BlankAnswer{{BlankID: "1", Answer: "blue"}}, a.Cloze.BlankAnswers)
}
