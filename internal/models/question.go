package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"
	QuestionCloze         QuestionType = "cloze"
	QuestionComprehension QuestionType = "comprehension"
)

const DefaultQuestionTitle = "Untitled Question"

// QuestionTypes lists every supported question variant in presentation order.
var QuestionTypes = []QuestionType{
	QuestionCategorize,
	QuestionCloze,
	QuestionComprehension,
}

func (t QuestionType) Valid() bool {
	return slices.Contains(QuestionTypes, t)
}

// Question is one entry of a form's ordered question list. Exactly one of the
// variant payloads is set, selected by Type. A question whose Type is not a
// known variant carries only the common fields and is rejected by schema
// validation before it reaches the store.
type Question struct {
	ID    string       `json:"id"`
	Type  QuestionType `json:"type" validate:"required,question_type"`
	Title string       `json:"title"`
	Image string       `json:"image,omitempty"`

	Categorize    *CategorizeContent    `json:"-"`
	Cloze         *ClozeContent         `json:"-"`
	Comprehension *ComprehensionContent `json:"-"`
}

type CategorizeContent struct {
	Categories []Category
	Items      []string
}

// Category is a named bucket. Items is always encoded, as [] when empty.
type Category struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type ClozeContent struct {
	Text    string
	Options []string
}

type ComprehensionContent struct {
	Passage  string
	Question string
	Options  []string
}

// questionDocument is the flat wire and storage shape of a Question.
type questionDocument struct {
	ID         string       `json:"id,omitempty"`
	Type       QuestionType `json:"type"`
	Title      string       `json:"title"`
	Image      string       `json:"image,omitempty"`
	Categories []Category   `json:"categories,omitempty"`
	Items      []string     `json:"items,omitempty"`
	Text       string       `json:"text,omitempty"`
	Options    []string     `json:"options,omitempty"`
	Passage    string       `json:"passage,omitempty"`
	Question   string       `json:"question,omitempty"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	doc := questionDocument{
		ID:    q.ID,
		Type:  q.Type,
		Title: q.Title,
		Image: q.Image,
	}

	switch q.Type {
	case QuestionCategorize:
		if q.Categorize != nil {
			doc.Categories = q.Categorize.Categories
			doc.Items = q.Categorize.Items
		}
	case QuestionCloze:
		if q.Cloze != nil {
			doc.Text = q.Cloze.Text
			doc.Options = q.Cloze.Options
		}
	case QuestionComprehension:
		if q.Comprehension != nil {
			doc.Passage = q.Comprehension.Passage
			doc.Question = q.Comprehension.Question
			doc.Options = q.Comprehension.Options
		}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON keeps only the fields belonging to the declared variant;
// anything else in the payload is discarded.
func (q *Question) UnmarshalJSON(data []byte) error {
	var doc questionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*q = Question{
		ID:    doc.ID,
		Type:  doc.Type,
		Title: doc.Title,
		Image: doc.Image,
	}

	switch doc.Type {
	case QuestionCategorize:
		q.Categorize = &CategorizeContent{
			Categories: doc.Categories,
			Items:      doc.Items,
		}
	case QuestionCloze:
		q.Cloze = &ClozeContent{
			Text:    doc.Text,
			Options: doc.Options,
		}
	case QuestionComprehension:
		q.Comprehension = &ComprehensionContent{
			Passage:  doc.Passage,
			Question: doc.Question,
			Options:  doc.Options,
		}
	}

	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []string{}
	}
	return json.Marshal(struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}{c.Name, items})
}

// UnmarshalJSON accepts either a bare category name or a {name, items} object.
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Category{Name: name, Items: []string{}}
		return nil
	}

	var obj struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("category must be a name or an object: %w", err)
	}
	if obj.Items == nil {
		obj.Items = []string{}
	}
	*c = Category{Name: obj.Name, Items: obj.Items}
	return nil
}
