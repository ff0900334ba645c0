// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// Follow handles GET /follow/:userId
func (s *Server) Follow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	followerID := c.Locals("userID").(uint)

	if err := s.followService.Follow(c.UserContext(), followerID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// Followers handles GET /users/:userId/followers
func (s *Server) Followers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	users, err := s.followService.Followers(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"followers": users})
}

// Following handles GET /users/:userId/following
func (s *Server) Following(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	users, err := s.followService.Following(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": users})
}
