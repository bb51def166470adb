package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStressLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		wantErr bool
	}{
		{name: "lower bound", level: 0, wantErr: false},
		{name: "upper bound", level: 5, wantErr: false},
		{name: "middle", level: 3, wantErr: false},
		{name: "below range", level: -1, wantErr: true},
		{name: "above range", level: 6, wantErr: true},
		{name: "far above range", level: 9, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StressLevel(tt.level)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStressLevelRange)
				assert.Equal(t, "The stress level must be between 0 and 5.", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImageType(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantErr  bool
	}{
		{name: "jpeg", mimeType: "image/jpeg", wantErr: false},
		{name: "png", mimeType: "image/png", wantErr: false},
		{name: "gif", mimeType: "image/gif", wantErr: true},
		{name: "plain text", mimeType: "text/plain", wantErr: true},
		{name: "empty", mimeType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ImageType(tt.mimeType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFileType)
				assert.Equal(t, "Invalid file type. Only JPEG and PNG images are allowed.", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
