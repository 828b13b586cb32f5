package server

import (
	"strings"

	"creatorhub/internal/models"
	"creatorhub/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const maxMediaSizeBytes = 20 * 1024 * 1024

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// MediaUploadResponse is the API response after uploading a media asset.
type MediaUploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// UploadMedia handles POST /api/media
// @Summary Upload media
// @Description Upload a media asset to object storage for use in a submission
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file"
// @Success 201 {object} MediaUploadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /media [post]
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	if s.media == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewValidationError("Media storage is not available"))
	}

	userID, _ := currentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}
	if file.Size > maxMediaSizeBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("File exceeds the 20MB limit"))
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if !allowedMediaTypes[contentType] {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unsupported media type"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	key := storage.MediaKey(userID, file.Filename)
	url, err := s.media.UploadFile(key, src, contentType)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(MediaUploadResponse{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		SizeBytes:   file.Size,
	})
}
