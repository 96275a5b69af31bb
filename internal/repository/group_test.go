package repository

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_GetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	createTestGroup(t, db, "essays")

	group, err := repo.GetBySlug(ctx, "essays")
	require.NoError(t, err)
	assert.Equal(t, "Group essays", group.Title)
}

func TestGroupRepository_GetBySlug_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)

	_, err := repo.GetBySlug(context.Background(), "unknown")
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGroupRepository_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	createTestGroup(t, db, "poetry")

	err := repo.Create(ctx, &models.Group{Title: "Other", Slug: "poetry"})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestGroupRepository_ListSortedByTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Group{Title: "Zines", Slug: "zines"}))
	require.NoError(t, repo.Create(ctx, &models.Group{Title: "Articles", Slug: "articles"}))

	groups, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Articles", groups[0].Title)
	assert.Equal(t, "Zines", groups[1].Title)
}
