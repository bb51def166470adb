// Package validate holds the domain validation rules for stress-tracking
// submissions. Both the HTTP boundary and the service re-check through the
// same functions, so the boundary values live in exactly one place.
package validate

import "errors"

// Stress level bounds, inclusive on both ends.
const (
	MinStressLevel = 0
	MaxStressLevel = 5
)

// Error messages are part of the public API contract and are surfaced to
// callers verbatim.
var (
	ErrStressLevelRange = errors.New("The stress level must be between 0 and 5.")
	ErrInvalidFileType  = errors.New("Invalid file type. Only JPEG and PNG images are allowed.")
)

// acceptedImageTypes are the MIME types the media pipeline accepts. The
// stored object is always re-encoded to JPEG regardless of the input type.
var acceptedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// StressLevel reports whether v is within the allowed range.
func StressLevel(v int) error {
	if v < MinStressLevel || v > MaxStressLevel {
		return ErrStressLevelRange
	}
	return nil
}

// ImageType reports whether mimeType is an accepted image encoding.
func ImageType(mimeType string) error {
	if _, ok := acceptedImageTypes[mimeType]; !ok {
		return ErrInvalidFileType
	}
	return nil
}
