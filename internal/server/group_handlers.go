package server

import (
	"quill/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// GroupPosts handles GET /group/:slug/: the group's description and its posts,
// newest first.
func (s *Server) GroupPosts(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	page := pagination.ParsePage(c.Query("page"))
	feedPage, err := s.feedService.GroupPage(c.Context(), group.ID, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"posts": feedPage.Posts,
		"page":  feedPage.Page,
	})
}
