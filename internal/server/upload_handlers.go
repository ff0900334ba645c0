// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"strconv"

	"clipnest/internal/models"
	"clipnest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadPage handles GET /upload: the categories the form can target.
func (s *Server) UploadPage(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// Upload handles POST /upload: multipart title, category, file and thumbnail.
func (s *Server) Upload(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	title := c.FormValue("title")
	categoryRaw := c.FormValue("category")
	categoryID, err := strconv.ParseUint(categoryRaw, 10, 32)
	if err != nil || categoryID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid category ID"))
	}

	in := service.UploadInput{
		UserID:     userID,
		Title:      title,
		CategoryID: uint(categoryID),
	}

	if header, err := c.FormFile("file"); err == nil {
		f, openErr := header.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Could not read the uploaded file"))
		}
		defer f.Close()
		in.Filename = header.Filename
		in.File = f
	}

	if header, err := c.FormFile("thumbnail"); err == nil {
		f, openErr := header.Open()
		if openErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Could not read the uploaded thumbnail"))
		}
		defer f.Close()
		in.Thumbnail = f
	}

	if _, err := s.videoService.Upload(c.UserContext(), in); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
