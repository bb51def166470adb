package model

import "time"

// StressRecord is a single stress-level observation submitted by a user.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type StressRecord struct {
	// ID is assigned by the document store at creation time and is empty
	// before the record has been persisted.
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	StressLevel int       `json:"stressLevel"`
	// Image is a URL reference to a previously uploaded photo, if any.
	Image     *string   `json:"image,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
