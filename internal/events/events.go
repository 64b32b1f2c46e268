package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kind of domain event published by the API
type EventType string

const (
	EventFormCreated EventType = "form.created"
	EventFormUpdated EventType = "form.updated"
	EventFormDeleted EventType = "form.deleted"

	EventResponseSubmitted EventType = "response.submitted"

	EventImageUploaded EventType = "image.uploaded"
	EventImageDeleted  EventType = "image.deleted"
)

const (
	eventSource  = "formbuilder-api"
	eventVersion = "1.0"
)

// Event is the envelope for every published event
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// NewEvent wraps data in an envelope with a fresh id and timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

type FormEvent struct {
	FormID        string `json:"form_id"`
	Title         string `json:"title,omitempty"`
	QuestionCount int    `json:"question_count"`
}

type ResponseSubmittedEvent struct {
	ResponseID  string    `json:"response_id"`
	FormID      string    `json:"form_id"`
	AnswerCount int       `json:"answer_count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ImageEvent struct {
	Identifier string `json:"identifier"`
	URL        string `json:"url,omitempty"`
}
