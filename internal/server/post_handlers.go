package server

import (
	"errors"

	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group_id"`
	ImageURL string `json:"image_url"`
}

// PostDetail handles GET /posts/:id/: one post with its comments.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePostForm handles GET /create/: the data the authoring form needs,
// currently the group choices.
func (s *Server) CreatePostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if groups == nil {
		groups = []*models.Group{}
	}

	return c.JSON(fiber.Map{
		"groups": groups,
	})
}

// CreatePost handles POST /create/. The author is always the acting user; a
// successful submit lands on the author's profile.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := s.currentUserID(c)
	_, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	// The home feed snapshot is stale now.
	_ = s.feedCache.Clear(c.Context())

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return redirect(c, profileURL(user.Username))
}

// EditPostForm handles GET /posts/:id/edit/: the current values of the post
// being edited. Anyone but the author is bounced to the post detail page
// without explanation.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, editable, err := s.postService.EditableBy(c.Context(), postID, s.currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if !editable {
		return redirect(c, postDetailURL(postID))
	}

	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if groups == nil {
		groups = []*models.Group{}
	}

	return c.JSON(fiber.Map{
		"post":   post,
		"groups": groups,
	})
}

// EditPost handles POST /posts/:id/edit/. Non-authors are redirected to the
// detail page, same as the form; authors land there after a successful edit.
func (s *Server) EditPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err = s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		ActorID:  s.currentUserID(c),
		PostID:   postID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if errors.Is(err, service.ErrNotAuthor) {
		return redirect(c, postDetailURL(postID))
	}
	if err != nil {
		return respondError(c, err)
	}

	_ = s.feedCache.Clear(c.Context())

	return redirect(c, postDetailURL(postID))
}
