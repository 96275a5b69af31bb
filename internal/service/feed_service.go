package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

// FeedService produces the paginated post listings: global, per group, per
// author, and per follow graph. All listings are ordered newest first.
type FeedService struct {
	postRepo repository.PostRepository
	pageSize int
}

// FeedPage is one page of a post listing plus its pagination metadata.
type FeedPage struct {
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// NewFeedService creates a new feed service with the configured page size.
func NewFeedService(postRepo repository.PostRepository, pageSize int) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		pageSize: pageSize,
	}
}

// PageSize returns the configured page size.
func (s *FeedService) PageSize() int {
	return s.pageSize
}

func (s *FeedService) page(
	ctx context.Context,
	requested int,
	count func(context.Context) (int64, error),
	list func(ctx context.Context, limit, offset int) ([]*models.Post, error),
) (*FeedPage, error) {
	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	p := pagination.New(requested, s.pageSize, total)
	posts, err := list(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return &FeedPage{Posts: posts, Page: p}, nil
}

// HomePage returns one page of the global feed.
func (s *FeedService) HomePage(ctx context.Context, requested int) (*FeedPage, error) {
	return s.page(ctx, requested, s.postRepo.CountAll, s.postRepo.List)
}

// GroupPage returns one page of a group's posts.
func (s *FeedService) GroupPage(ctx context.Context, groupID uint, requested int) (*FeedPage, error) {
	return s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.postRepo.CountByGroup(ctx, groupID) },
		func(ctx context.Context, limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListByGroup(ctx, groupID, limit, offset)
		})
}

// AuthorPage returns one page of an author's posts.
func (s *FeedService) AuthorPage(ctx context.Context, authorID uint, requested int) (*FeedPage, error) {
	return s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.postRepo.CountByAuthor(ctx, authorID) },
		func(ctx context.Context, limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
		})
}

// FollowedPage returns one page of posts by authors the user follows.
func (s *FeedService) FollowedPage(ctx context.Context, userID uint, requested int) (*FeedPage, error) {
	return s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.postRepo.CountFollowed(ctx, userID) },
		func(ctx context.Context, limit, offset int) ([]*models.Post, error) {
			return s.postRepo.ListFollowed(ctx, userID, limit, offset)
		})
}
