package domain

import "time"

// EventType represents the type of stream event
type EventType string

const (
	EventStart          EventType = "start"
	EventPageProcessing EventType = "page_processing"
	EventPageComplete   EventType = "page_complete"
	EventPageEmpty      EventType = "page_empty" // Page had no extractable text
	EventError          EventType = "error"
	EventComplete       EventType = "complete"
)

// StreamEvent represents a progress event emitted during extraction.
// The extracted text itself is never carried by events.
type StreamEvent struct {
	Type       EventType   `json:"type"`
	PageNumber int         `json:"page_number,omitempty"`
	TotalPages int         `json:"total_pages,omitempty"`
	Payload    interface{} `json:"payload,omitempty"` // Status message or error text
	Timestamp  time.Time   `json:"timestamp"`
}

// ExtractionStats contains metadata about one extraction run
type ExtractionStats struct {
	TotalPages int
	TextPages  int
	EmptyPages int
	Duration   time.Duration
}
