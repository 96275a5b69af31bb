package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

const maxCommentTextLen = 10000

// CommentService implements comment creation rules. Comments have no edit or
// delete path; they disappear only through post or author deletion cascades.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// AddCommentInput carries a comment creation request. Author and post are
// forced from the acting user and the route; client-supplied values are
// ignored upstream.
type AddCommentInput struct {
	ActorID uint
	PostID  uint
	Text    string
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment validates and persists a comment against an existing post.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxCommentTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	// 404 for comments against unknown posts.
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	actorID := in.ActorID
	comment := &models.Comment{
		Text:     text,
		AuthorID: &actorID,
		PostID:   &post.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments of a post, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
