// Package server contains the HTTP handlers for the application's endpoints.
package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DeleteComment handles POST /admin/delete_comment/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actorID := c.Locals("userID").(uint)

	if err := s.moderationService.DeleteComment(c.UserContext(), actorID, commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect(refererPath(c), fiber.StatusSeeOther)
}

// DeleteVideo handles POST /admin/delete_video/:id
func (s *Server) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actorID := c.Locals("userID").(uint)

	if err := s.moderationService.DeleteVideo(c.UserContext(), actorID, videoID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// refererPath returns the referring page's path, or "/" when there is none or
// it points off-site.
func refererPath(c *fiber.Ctx) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return "/"
	}
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	// Absolute referer: keep only the path portion for a same-site redirect.
	if idx := strings.Index(ref, "://"); idx != -1 {
		rest := ref[idx+3:]
		if slash := strings.Index(rest, "/"); slash != -1 {
			return rest[slash:]
		}
	}
	return "/"
}
