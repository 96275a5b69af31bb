package service

import (
	"context"

	"quill/internal/models"
)

type postRepoStub struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Post, error)
	updateFn        func(ctx context.Context, post *models.Post) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, limit, offset int) ([]*models.Post, error)
	listByGroupFn   func(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error)
	listByAuthorFn  func(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	listFollowedFn  func(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	countAllFn      func(ctx context.Context) (int64, error)
	countByGroupFn  func(ctx context.Context, groupID uint) (int64, error)
	countByAuthorFn func(ctx context.Context, authorID uint) (int64, error)
	countFollowedFn func(ctx context.Context, userID uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *postRepoStub) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID, limit, offset)
}

func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}

func (s *postRepoStub) ListFollowed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listFollowedFn(ctx, userID, limit, offset)
}

func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}

func (s *postRepoStub) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}

func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}

func (s *postRepoStub) CountFollowed(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowedFn(ctx, userID)
}

type groupRepoStub struct {
	createFn    func(ctx context.Context, group *models.Group) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Group, error)
	getBySlugFn func(ctx context.Context, slug string) (*models.Group, error)
	listFn      func(ctx context.Context) ([]*models.Group, error)
	deleteFn    func(ctx context.Context, id uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}

func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}

func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}

func (s *groupRepoStub) List(ctx context.Context) ([]*models.Group, error) {
	return s.listFn(ctx)
}

func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type userRepoStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type followRepoStub struct {
	followFn   func(ctx context.Context, userID, authorID uint) (bool, error)
	unfollowFn func(ctx context.Context, userID, authorID uint) (bool, error)
	existsFn   func(ctx context.Context, userID, authorID uint) (bool, error)
}

func (s *followRepoStub) Follow(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followFn(ctx, userID, authorID)
}

func (s *followRepoStub) Unfollow(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.unfollowFn(ctx, userID, authorID)
}

func (s *followRepoStub) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.existsFn(ctx, userID, authorID)
}

type commentRepoStub struct {
	createFn      func(ctx context.Context, comment *models.Comment) error
	listByPostFn  func(ctx context.Context, postID uint) ([]*models.Comment, error)
	countByPostFn func(ctx context.Context, postID uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
