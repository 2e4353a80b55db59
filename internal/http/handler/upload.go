package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mapapi/internal/service"
)

// UploadMap godoc
// @Summary Upload a map image
// @Description Stores a PNG or JPEG under a YYYYMMDD_HHMMSS name and returns its public path.
// @Tags maps
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PNG or JPEG image"
// @Success 200 {object} model.UploadResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /upload [post]
func UploadMap(mapSvc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No file uploaded")
		}

		ct := fh.Header.Get(fiber.HeaderContentType)
		if !service.IsAllowedImageType(ct) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "Only images are allowed!")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := mapSvc.Upload(c.UserContext(), f, fh.Filename, ct)
		if err != nil {
			if errors.Is(err, service.ErrUnsupportedType) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "Only images are allowed!")
			}
			logFailure(c, "upload_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "UPLOAD_FAILED", "Error storing the file")
		}
		return c.JSON(res)
	}
}
