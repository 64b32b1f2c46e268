package models

import "encoding/json"

// Answer is a respondent's answer to one question. The variant payload
// mirrors the question variants and is selected by QuestionType.
type Answer struct {
	QuestionID   string       `json:"questionId" validate:"required"`
	QuestionType QuestionType `json:"questionType" validate:"required,question_type"`

	Categorize    *CategorizeAnswer    `json:"-"`
	Cloze         *ClozeAnswer         `json:"-"`
	Comprehension *ComprehensionAnswer `json:"-"`
}

type CategorizeAnswer struct {
	Categorizations []Categorization
}

type Categorization struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type ClozeAnswer struct {
	BlankAnswers []BlankAnswer
}

type BlankAnswer struct {
	BlankID string `json:"blankId"`
	Answer  string `json:"answer"`
}

type ComprehensionAnswer struct {
	MCQAnswers []MCQAnswer
}

type MCQAnswer struct {
	QuestionIndex  int `json:"questionIndex"`
	SelectedOption int `json:"selectedOption"`
}

type answerDocument struct {
	QuestionID      string           `json:"questionId"`
	QuestionType    QuestionType     `json:"questionType"`
	Categorizations []Categorization `json:"categorizations,omitempty"`
	BlankAnswers    []BlankAnswer    `json:"blankAnswers,omitempty"`
	MCQAnswers      []MCQAnswer      `json:"mcqAnswers,omitempty"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	doc := answerDocument{
		QuestionID:   a.QuestionID,
		QuestionType: a.QuestionType,
	}

	switch a.QuestionType {
	case QuestionCategorize:
		if a.Categorize != nil {
			doc.Categorizations = a.Categorize.Categorizations
		}
	case QuestionCloze:
		if a.Cloze != nil {
			doc.BlankAnswers = a.Cloze.BlankAnswers
		}
	case QuestionComprehension:
		if a.Comprehension != nil {
			doc.MCQAnswers = a.Comprehension.MCQAnswers
		}
	}

	return json.Marshal(doc)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var doc answerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*a = Answer{
		QuestionID:   doc.QuestionID,
		QuestionType: doc.QuestionType,
	}

	switch doc.QuestionType {
	case QuestionCategorize:
		a.Categorize = &CategorizeAnswer{Categorizations: doc.Categorizations}
	case QuestionCloze:
		a.Cloze = &ClozeAnswer{BlankAnswers: doc.BlankAnswers}
	case QuestionComprehension:
		a.Comprehension = &ComprehensionAnswer{MCQAnswers: doc.MCQAnswers}
	}

	return nil
}
