package server

import (
	"quill/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /profile/:username/: the author's info, post count, and
// posts. For signed-in viewers the response carries whether they follow the
// author.
func (s *Server) Profile(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	page := pagination.ParsePage(c.Query("page"))
	feedPage, err := s.feedService.AuthorPage(c.Context(), author.ID, page)
	if err != nil {
		return respondError(c, err)
	}

	following, err := s.followService.IsFollowing(c.Context(), s.currentUserID(c), author)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"author":      author,
		"posts_count": feedPage.Page.TotalItems,
		"following":   following,
		"posts":       feedPage.Posts,
		"page":        feedPage.Page,
	})
}
