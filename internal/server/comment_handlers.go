package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /posts/:id/comment/. The comment's author and post
// come from the session and the route; a successful submit lands back on the
// post detail page.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err = s.commentService.AddComment(c.Context(), service.AddCommentInput{
		ActorID: s.currentUserID(c),
		PostID:  postID,
		Text:    req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}

	return redirect(c, postDetailURL(postID))
}
