package validation

import (
	"fmt"
	"strings"

	"creatorhub/internal/models"
)

const (
	maxCaptionLen  = 2200
	maxMediaFiles  = 10
	maxHashtags    = 30
	maxHashtagLen  = 100
	maxNotesLen    = 5000
	maxFileNameLen = 255
)

// ValidateContentPayload checks a submission's content payload before any
// persistence call: platform, media files, caption and hashtag limits.
func ValidateContentPayload(platform models.Platform, caption string, files []models.MediaFile, hashtags []string) error {
	if err := ValidatePlatform(platform); err != nil {
		return err
	}

	if len(files) == 0 {
		return models.NewValidationError("At least one media file is required")
	}
	if len(files) > maxMediaFiles {
		return models.NewValidationError(fmt.Sprintf("At most %d media files are allowed", maxMediaFiles))
	}
	for i, f := range files {
		if strings.TrimSpace(f.URL) == "" {
			return models.NewValidationError(fmt.Sprintf("Media file %d is missing a URL", i+1))
		}
		if f.Type != models.MediaTypeImage && f.Type != models.MediaTypeVideo {
			return models.NewValidationError(fmt.Sprintf("Media file %d has an unknown type %q", i+1, f.Type))
		}
		if len(f.Name) > maxFileNameLen {
			return models.NewValidationError(fmt.Sprintf("Media file %d name must not exceed %d characters", i+1, maxFileNameLen))
		}
	}

	if len(caption) > maxCaptionLen {
		return models.NewValidationError(fmt.Sprintf("Caption must not exceed %d characters", maxCaptionLen))
	}

	if len(hashtags) > maxHashtags {
		return models.NewValidationError(fmt.Sprintf("At most %d hashtags are allowed", maxHashtags))
	}
	for _, tag := range hashtags {
		if strings.TrimSpace(tag) == "" {
			return models.NewValidationError("Hashtags must not be empty")
		}
		if len(tag) > maxHashtagLen {
			return models.NewValidationError(fmt.Sprintf("Hashtag %q is too long", tag))
		}
	}

	return nil
}

// ValidateNotes bounds free-text notes fields.
func ValidateNotes(notes string) error {
	if len(notes) > maxNotesLen {
		return models.NewValidationError(fmt.Sprintf("Notes must not exceed %d characters", maxNotesLen))
	}
	return nil
}
