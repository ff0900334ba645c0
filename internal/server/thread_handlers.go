// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"fmt"

	"clipnest/internal/models"
	"clipnest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ThreadPage handles GET /thread/:threadId
func (s *Server) ThreadPage(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "threadId")
	if err != nil {
		return nil
	}

	page, err := s.threadService.GetThread(c.UserContext(), threadID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"thread": page.Thread,
		"posts":  page.Posts,
	})
}

// ThreadReply handles POST /thread/:threadId. Replies carry no author and
// need no session.
func (s *Server) ThreadReply(c *fiber.Ctx) error {
	threadID, err := s.parseID(c, "threadId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.threadService.AddPost(c.UserContext(), threadID, req.Content); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/thread/%d", threadID), fiber.StatusSeeOther)
}

// CreateThread handles POST /create_thread/:categoryId
func (s *Server) CreateThread(c *fiber.Ctx) error {
	categoryID, err := s.parseID(c, "categoryId")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title" form:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.threadService.CreateThread(c.UserContext(), service.CreateThreadInput{
		CategoryID: categoryID,
		Title:      req.Title,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/genre/%d", categoryID), fiber.StatusSeeOther)
}
