package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"mapapi/internal/model"
	"mapapi/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

// filenameParam returns the unescaped :filename path parameter.
func filenameParam(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("filename"))
}

func invalidFilename(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "invalid filename")
}

// FileExists godoc
// @Summary Check whether a document exists
// @Tags documents
// @Produce json
// @Param filename path string true "Document filename"
// @Success 200 {object} existsResponse
// @Failure 400 {object} errorPayload
// @Router /file-exists/{filename} [get]
func FileExists(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := filenameParam(c)
		if err != nil {
			return invalidFilename(c)
		}
		ok, err := docSvc.Exists(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, service.ErrInvalidFilename) {
				return invalidFilename(c)
			}
			return c.JSON(existsResponse{Exists: false})
		}
		return c.JSON(existsResponse{Exists: ok})
	}
}

// GetFiles godoc
// @Summary List document metadata
// @Description Every document with its modification time and number of cP entries.
// @Tags documents
// @Produce json
// @Success 200 {array} model.DocumentInfo
// @Failure 500 {object} errorPayload
// @Router /get-files [get]
func GetFiles(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := docSvc.List(c.UserContext())
		if err != nil {
			logFailure(c, "list_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "LIST_FAILED", "Error getting file metadata")
		}
		if rows == nil {
			rows = []model.DocumentInfo{}
		}
		return c.JSON(rows)
	}
}

// SaveFile godoc
// @Summary Save a document
// @Description Writes data pretty-printed under filename, replacing any existing document.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body model.SaveRequest true "Filename and JSON data"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /save-file [post]
func SaveFile(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.SaveRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be JSON with filename and data")
		}

		if err := docSvc.Save(c.UserContext(), req.Filename, req.Data); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidFilename):
				return invalidFilename(c)
			case errors.Is(err, service.ErrDataRequired), errors.Is(err, service.ErrInvalidData):
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be JSON with filename and data")
			}
			logFailure(c, "save_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "SAVE_FAILED", "Error saving the file")
		}
		return c.JSON(messageResponse{Message: "File saved successfully!"})
	}
}

// LoadFile godoc
// @Summary Load a document
// @Description Returns the stored JSON document as is.
// @Tags documents
// @Produce json
// @Param filename path string true "Document filename"
// @Success 200 {object} object
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /load-file/{filename} [get]
func LoadFile(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := filenameParam(c)
		if err != nil {
			return invalidFilename(c)
		}

		doc, err := docSvc.Load(c.UserContext(), name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidFilename):
				return invalidFilename(c)
			case errors.Is(err, service.ErrMalformedDocument):
				logFailure(c, "load_malformed", err)
				return writeError(c, fiber.StatusInternalServerError, "MALFORMED_DOCUMENT", "Stored file is not valid JSON")
			}
			logFailure(c, "load_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "LOAD_FAILED", "Error loading file")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(doc)
	}
}

// DeleteFile godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param filename path string true "Document filename"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /delete-file/{filename} [delete]
func DeleteFile(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := filenameParam(c)
		if err != nil {
			return invalidFilename(c)
		}

		if err := docSvc.Delete(c.UserContext(), name); err != nil {
			if errors.Is(err, service.ErrInvalidFilename) {
				return invalidFilename(c)
			}
			logFailure(c, "delete_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "DELETE_FAILED", "Error deleting the file")
		}
		return c.JSON(messageResponse{Message: "File deleted successfully!"})
	}
}
