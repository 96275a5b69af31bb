package server

import (
	"encoding/json"

	"quill/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /. The rendered page is cached for a short window, so a
// brand-new post may take up to the cache TTL to appear here.
func (s *Server) Index(c *fiber.Ctx) error {
	page := pagination.ParsePage(c.Query("page"))

	if snapshot, ok := s.feedCache.Get(c.Context(), page); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(snapshot)
	}

	feedPage, err := s.feedService.HomePage(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}

	snapshot, err := json.Marshal(feedPage)
	if err == nil {
		s.feedCache.Set(c.Context(), page, snapshot)
	}

	return c.JSON(feedPage)
}

// FollowIndex handles GET /follow/: posts by authors the acting user follows.
// Never cached; every viewer sees a different feed.
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	page := pagination.ParsePage(c.Query("page"))

	feedPage, err := s.feedService.FollowedPage(c.Context(), userID, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feedPage)
}
