// Package transform contains the synchronous image resize/re-encode primitive
// used by the media pipeline. Whatever the input encoding (JPEG or PNG), the
// output is always a complete JPEG buffer at the configured dimensions; there
// are no partial results.
package transform

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Resizer re-encodes raw image bytes to JPEG at a fixed target size.
type Resizer interface {
	Resize(data []byte) ([]byte, error)
}

// JPEGResizer resizes decoded images to exactly width x height pixels and
// encodes the result as JPEG.
type JPEGResizer struct {
	width  int
	height int
}

// NewJPEGResizer creates a resizer with the given target dimensions.
func NewJPEGResizer(width, height int) (*JPEGResizer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions %dx%d", width, height)
	}
	return &JPEGResizer{width: width, height: height}, nil
}

func (r *JPEGResizer) Resize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Resize(img, r.width, r.height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
