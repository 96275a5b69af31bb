// Package service contains business rules for the application's use cases.
package service

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

// ErrNotAuthor is returned when a user attempts to modify a post they do not
// own. Handlers translate it into a redirect to the post detail view rather
// than an error page.
var ErrNotAuthor = errors.New("acting user is not the post author")

const maxPostTextLen = 50000

// PostService implements the post lifecycle rules.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries a post creation request. AuthorID is always the
// acting user; any author supplied by the client is ignored upstream.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// UpdatePostInput carries a post edit request.
type UpdatePostInput struct {
	ActorID  uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

// CreatePost validates the input and persists a new post authored by the
// acting user.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	if err := s.validateGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post with the given id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies an edit to a post. Only the author may edit; other users
// get ErrNotAuthor and the stored record is left untouched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.ActorID {
		return nil, ErrNotAuthor
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	if err := s.validateGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = in.GroupID
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) validateGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.NewValidationError("Unknown group")
		}
		return err
	}
	return nil
}

// EditableBy reports whether the given user may edit the post.
func (s *PostService) EditableBy(ctx context.Context, postID, userID uint) (*models.Post, bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return post, post.AuthorID == userID, nil
}
