package repository

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "mira")
	createTestPost(t, db, author, "oldest", testTime(1))
	createTestPost(t, db, author, "middle", testTime(2))
	createTestPost(t, db, author, "newest", testTime(3))

	posts, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Text)
	assert.Equal(t, "middle", posts[1].Text)
	assert.Equal(t, "oldest", posts[2].Text)
	assert.Equal(t, "mira", posts[0].Author.Username)
}

func TestPostRepository_PaginationSlices(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "pat")
	for i := 1; i <= 13; i++ {
		createTestPost(t, db, author, "post", testTime(i))
	}

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)

	pageOne, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, pageOne, 10)

	pageTwo, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	assert.Len(t, pageTwo, 3)
}

func TestPostRepository_ListByGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "sam")
	group := createTestGroup(t, db, "letters")

	grouped := &models.Post{Text: "in group", AuthorID: author.ID, GroupID: &group.ID, CreatedAt: testTime(1)}
	require.NoError(t, repo.Create(ctx, grouped))
	createTestPost(t, db, author, "ungrouped", testTime(2))

	posts, err := repo.ListByGroup(ctx, group.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in group", posts[0].Text)

	count, err := repo.CountByGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostRepository_ListFollowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	ignored := createTestUser(t, db, "ignored")

	createTestPost(t, db, followed, "from followed", testTime(1))
	createTestPost(t, db, ignored, "from ignored", testTime(2))

	_, err := followRepo.Follow(ctx, reader.ID, followed.ID)
	require.NoError(t, err)

	posts, err := repo.ListFollowed(ctx, reader.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "from followed", posts[0].Text)

	count, err := repo.CountFollowed(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// An empty follow graph yields an empty feed.
	posts, err = repo.ListFollowed(ctx, ignored.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_CommentsCountComputed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "counted")
	post := createTestPost(t, db, author, "counted post", testTime(1))

	authorID := author.ID
	commentRepo := NewCommentRepository(db)
	for i := 0; i < 2; i++ {
		require.NoError(t, commentRepo.Create(ctx, &models.Comment{
			Text:     "hi",
			AuthorID: &authorID,
			PostID:   &post.ID,
		}))
	}

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestPostRepository_GroupDeleteNullsReference(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "survivor")
	group := createTestGroup(t, db, "doomed")

	post := &models.Post{Text: "survives", AuthorID: author.ID, GroupID: &group.ID, CreatedAt: testTime(1)}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, NewGroupRepository(db).Delete(ctx, group.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID, "deleting the group should null the reference, not the post")
	assert.Equal(t, "survives", got.Text)
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "cascade")
	post := createTestPost(t, db, author, "with comments", testTime(1))

	authorID := author.ID
	require.NoError(t, NewCommentRepository(db).Create(ctx, &models.Comment{
		Text:     "doomed comment",
		AuthorID: &authorID,
		PostID:   &post.ID,
	}))

	require.NoError(t, repo.Delete(ctx, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}
