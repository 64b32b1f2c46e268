package services

import "github.com/formcraft/formbuilder-api/internal/models"

// CreateFormRequest is the client payload for a new form. Questions arrive in
// raw shape and are normalized before anything is stored.
type CreateFormRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	HeaderImage string        `json:"headerImage"`
	Questions   []RawQuestion `json:"questions"`
}

// RawQuestion carries every field any question variant may send. Categories
// may be plain names or {name, items} objects.
type RawQuestion struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Image string `json:"image"`

	Categories []models.Category `json:"categories"`
	Items      []string          `json:"items"`

	Text    string   `json:"text"`
	Options []string `json:"options"`

	Passage  string `json:"passage"`
	Question string `json:"question"`
}

// UpdateFormRequest replaces the mutable fields of a stored form
type UpdateFormRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	HeaderImage string            `json:"headerImage"`
	Questions   []models.Question `json:"questions"`
}

// ExportFile is a rendered spreadsheet ready to be streamed
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
