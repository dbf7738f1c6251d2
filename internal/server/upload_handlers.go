package server

import (
	"fmt"
	"io"

	"moodrealm/internal/models"
	"moodrealm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles POST /api/upload/image
// @Summary Upload an image
// @Description Accepts jpeg, png, gif or webp up to the configured size; stored as WebP.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image"
// @Success 201 {object} service.UploadResult
// @Failure 400 {object} models.ErrorResponse
// @Router /upload/image [post]
func (s *Server) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Image file is required"))
	}
	if file.Size > s.mediaService.MaxUploadSizeBytes() {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(
			fmt.Sprintf("File too large (max %dMB)", s.mediaService.MaxUploadSizeBytes()/(1024*1024))))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Unable to read uploaded file"))
	}

	uploaded, err := s.mediaService.Upload(c.UserContext(), service.UploadImageInput{
		UserID:      currentUserID(c),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}
