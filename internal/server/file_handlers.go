// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"errors"
	"net/url"

	"clipnest/internal/models"
	"clipnest/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// ServeUpload handles GET /uploads/*: raw bytes from the upload root.
func (s *Server) ServeUpload(c *fiber.Ctx) error {
	rel, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid file path"))
	}

	abs, err := s.store.Resolve(rel)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid file path"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if !s.store.Exists(rel) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("file", rel))
	}

	return c.SendFile(abs)
}
