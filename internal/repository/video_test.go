package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"clipnest/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestVideoRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "uploader", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	category := &models.Category{Name: "Life"}
	require.NoError(t, db.Create(category).Error)

	mkVideo := func(title string) *models.Video {
		v := &models.Video{
			Title:      title,
			Filename:   "Life/" + title + ".mp4",
			Thumbnail:  "thumbnails/" + title + ".mp4_thumb.jpg",
			CategoryID: category.ID,
			UserID:     user.ID,
		}
		require.NoError(t, repo.Create(ctx, v))
		return v
	}

	first := mkVideo("first")
	second := mkVideo("second")
	third := mkVideo("third")

	t.Run("GetByID Preloads", func(t *testing.T) {
		got, err := repo.GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, "first", got.Title)
		assert.Equal(t, "uploader", got.User.Username)
		assert.Equal(t, "Life", got.Category.Name)
	})

	t.Run("GetByID Missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		appErr, ok := err.(*models.AppError)
		if assert.True(t, ok) {
			assert.Equal(t, "NOT_FOUND", appErr.Code)
		}
	})

	t.Run("ListByCategory Ordered By ID", func(t *testing.T) {
		videos, err := repo.ListByCategory(ctx, category.ID)
		assert.NoError(t, err)
		if assert.Len(t, videos, 3) {
			assert.Equal(t, first.ID, videos[0].ID)
			assert.Equal(t, third.ID, videos[2].ID)
		}
	})

	t.Run("IncrementViewCount Adds Exactly One", func(t *testing.T) {
		require.NoError(t, repo.IncrementViewCount(ctx, first.ID))
		require.NoError(t, repo.IncrementViewCount(ctx, first.ID))

		got, err := repo.GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, got.ViewCount)
	})

	t.Run("IncrementViewCount Missing", func(t *testing.T) {
		err := repo.IncrementViewCount(ctx, 9999)
		appErr, ok := err.(*models.AppError)
		if assert.True(t, ok) {
			assert.Equal(t, "NOT_FOUND", appErr.Code)
		}
	})

	t.Run("NextAfter Smallest Greater ID", func(t *testing.T) {
		next, err := repo.NextAfter(ctx, first.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, next) {
			assert.Equal(t, second.ID, next.ID)
		}
	})

	t.Run("NextAfter Last Video", func(t *testing.T) {
		next, err := repo.NextAfter(ctx, third.ID)
		assert.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("NextAfter Skips Gaps", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))
		next, err := repo.NextAfter(ctx, first.ID)
		assert.NoError(t, err)
		if assert.NotNil(t, next) {
			assert.Equal(t, third.ID, next.ID)
		}
	})
}

func TestVideoRepository_GetByID_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "videos"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(ctx, 1)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_NextAfter_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVideoRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "videos"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.NextAfter(ctx, 1)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
