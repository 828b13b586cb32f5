package validation

import (
	"strings"
	"testing"

	"creatorhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func validFiles() []models.MediaFile {
	return []models.MediaFile{
		{URL: "https://cdn.example.com/a.jpg", Type: models.MediaTypeImage, Name: "a.jpg"},
	}
}

func TestValidateContentPayload(t *testing.T) {
	tests := []struct {
		name     string
		platform models.Platform
		caption  string
		files    []models.MediaFile
		hashtags []string
		wantErr  bool
	}{
		{
			name:     "valid single image",
			platform: models.PlatformInstagram,
			caption:  "launch day",
			files:    validFiles(),
			hashtags: []string{"#launch"},
		},
		{
			name:     "unknown platform",
			platform: "myspace",
			files:    validFiles(),
			wantErr:  true,
		},
		{
			name:     "no media files",
			platform: models.PlatformTikTok,
			files:    nil,
			wantErr:  true,
		},
		{
			name:     "file without url",
			platform: models.PlatformTikTok,
			files:    []models.MediaFile{{Type: models.MediaTypeVideo, Name: "clip.mp4"}},
			wantErr:  true,
		},
		{
			name:     "unknown media type",
			platform: models.PlatformYouTube,
			files:    []models.MediaFile{{URL: "https://cdn.example.com/a.gif", Type: "gif"}},
			wantErr:  true,
		},
		{
			name:     "caption too long",
			platform: models.PlatformInstagram,
			caption:  strings.Repeat("x", maxCaptionLen+1),
			files:    validFiles(),
			wantErr:  true,
		},
		{
			name:     "empty hashtag",
			platform: models.PlatformInstagram,
			files:    validFiles(),
			hashtags: []string{"#ok", "  "},
			wantErr:  true,
		},
		{
			name:     "too many files",
			platform: models.PlatformInstagram,
			files:    make([]models.MediaFile, maxMediaFiles+1),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentPayload(tt.platform, tt.caption, tt.files, tt.hashtags)
			if tt.wantErr {
				assert.Error(t, err)
				var appErr *models.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNotes(t *testing.T) {
	assert.NoError(t, ValidateNotes("looks good"))
	assert.NoError(t, ValidateNotes(""))
	assert.Error(t, ValidateNotes(strings.Repeat("n", maxNotesLen+1)))
}
