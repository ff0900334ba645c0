// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"fmt"

	"clipnest/internal/models"

	"github.com/gofiber/fiber/v2"
)

// VideoPage handles GET /video/:videoId. Every visit counts one view.
func (s *Server) VideoPage(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	result, err := s.videoService.Visit(c.UserContext(), videoID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"video":      result.Video,
		"next_video": result.Next,
	})
}

// VideoComment handles POST /video/:videoId. The view increment applies
// whether or not a comment is created; unauthenticated posters are sent to
// the login page and no comment row is written.
func (s *Server) VideoComment(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "videoId")
	if err != nil {
		return nil
	}

	userID, ok := s.sessionUserID(c)
	if !ok {
		// The visit still counts before the redirect.
		if err := s.videoRepo.IncrementViewCount(c.UserContext(), videoID); err != nil {
			return respondServiceError(c, err)
		}
		return redirectToLogin(c)
	}

	var req struct {
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == "" {
		// The visit counts even when the comment is rejected.
		if err := s.videoRepo.IncrementViewCount(c.UserContext(), videoID); err != nil {
			return respondServiceError(c, err)
		}
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	if _, err := s.videoService.VisitWithComment(c.UserContext(), videoID, userID, req.Content); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/video/%d", videoID), fiber.StatusSeeOther)
}
