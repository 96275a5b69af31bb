package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// FollowService implements the follow graph rules. Both operations are
// idempotent toggles resolved by username.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow subscribes userID to the author with the given username. Following
// yourself is silently skipped, matching the idempotent no-op contract of the
// other degenerate cases. Returns whether a new edge was created.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	if author.ID == userID {
		return false, nil
	}
	return s.followRepo.Follow(ctx, userID, author.ID)
}

// Unfollow removes the subscription if present. Returns whether an edge was
// removed; an absent edge is a no-op, not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Unfollow(ctx, userID, author.ID)
}

// IsFollowing reports whether userID follows the given author.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, author *models.User) (bool, error) {
	if userID == 0 || author == nil {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, author.ID)
}
