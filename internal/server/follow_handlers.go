package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /profile/:username/follow/. Following yourself or
// an author you already follow changes nothing; either way you land back on
// the profile.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")

	if _, err := s.followService.Follow(c.Context(), s.currentUserID(c), username); err != nil {
		return respondError(c, err)
	}

	return redirect(c, profileURL(username))
}

// UnfollowAuthor handles POST /profile/:username/unfollow/. Removing an
// absent subscription is a no-op.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")

	if _, err := s.followService.Unfollow(c.Context(), s.currentUserID(c), username); err != nil {
		return respondError(c, err)
	}

	return redirect(c, profileURL(username))
}
