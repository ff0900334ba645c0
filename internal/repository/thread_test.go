package repository

import (
	"context"
	"testing"

	"clipnest/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewThreadRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "War"}
	require.NoError(t, db.Create(category).Error)

	t.Run("Create And Get", func(t *testing.T) {
		thread := &models.Thread{Title: "tactics", CategoryID: category.ID}
		assert.NoError(t, repo.Create(ctx, thread))
		assert.NotZero(t, thread.ID)

		got, err := repo.GetByID(ctx, thread.ID)
		assert.NoError(t, err)
		assert.Equal(t, "tactics", got.Title)
	})

	t.Run("GetByID Missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		appErr, ok := err.(*models.AppError)
		if assert.True(t, ok) {
			assert.Equal(t, "NOT_FOUND", appErr.Code)
		}
	})

	t.Run("ListByCategory", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Thread{Title: "supplies", CategoryID: category.ID}))

		threads, err := repo.ListByCategory(ctx, category.ID)
		assert.NoError(t, err)
		assert.Len(t, threads, 2)
	})

	t.Run("Posts In Creation Order", func(t *testing.T) {
		thread := &models.Thread{Title: "history", CategoryID: category.ID}
		require.NoError(t, repo.Create(ctx, thread))

		for _, content := range []string{"first reply", "second reply"} {
			err := repo.CreatePost(ctx, &models.Post{Content: content, ThreadID: thread.ID})
			assert.NoError(t, err)
		}

		posts, err := repo.ListPosts(ctx, thread.ID)
		assert.NoError(t, err)
		if assert.Len(t, posts, 2) {
			assert.Equal(t, "first reply", posts[0].Content)
			assert.Equal(t, "second reply", posts[1].Content)
		}
	})
}
