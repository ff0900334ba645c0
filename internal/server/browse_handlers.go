// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// Index handles GET /
func (s *Server) Index(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	users, err := s.userRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"categories": categories,
		"users":      users,
	})
}

// Genre handles GET /genre/:categoryId
func (s *Server) Genre(c *fiber.Ctx) error {
	categoryID, err := s.parseID(c, "categoryId")
	if err != nil {
		return nil
	}

	category, err := s.categoryRepo.GetByID(c.UserContext(), categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}

	videos, err := s.videoService.ListByCategory(c.UserContext(), categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}

	threads, err := s.threadService.ListByCategory(c.UserContext(), categoryID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"category": category,
		"videos":   videos,
		"threads":  threads,
	})
}
