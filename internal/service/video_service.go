// Package service implements the application's business logic on top of the
// repository and storage layers.
package service

import (
	"context"
	"io"

	"clipnest/internal/models"
	"clipnest/internal/observability"
	"clipnest/internal/repository"
	"clipnest/internal/storage"

	"gorm.io/gorm"
)

// VideoService handles video upload, viewing and commenting.
type VideoService struct {
	db           *gorm.DB
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	store        *storage.Store
}

// UploadInput carries one multipart upload.
type UploadInput struct {
	UserID     uint
	Title      string
	CategoryID uint
	Filename   string
	File       io.Reader
	Thumbnail  io.Reader
}

// VisitResult is the video page payload: the visited video (view count
// already incremented) and the next video in ascending ID order, if any.
type VisitResult struct {
	Video *models.Video
	Next  *models.Video
}

// NewVideoService creates a new VideoService
func NewVideoService(
	db *gorm.DB,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	categoryRepo repository.CategoryRepository,
	store *storage.Store,
) *VideoService {
	return &VideoService{
		db:           db,
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		store:        store,
	}
}

// Upload stores the video and thumbnail files under the category's directory
// and creates the Video row. Files are written first; if the row cannot be
// created the written files are removed so a failed write never leaves a row
// pointing at nothing. An upload reusing a filename within the same category
// overwrites the stored file.
func (s *VideoService) Upload(ctx context.Context, in UploadInput) (*models.Video, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Filename == "" || in.File == nil {
		return nil, models.NewValidationError("A video file is required")
	}
	if in.Thumbnail == nil {
		return nil, models.NewValidationError("A thumbnail is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	filePath, size, err := s.store.Save(category.Name, in.Filename, in.File)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	thumbPath, _, err := s.store.Save(storage.ThumbnailDir, storage.ThumbnailName(in.Filename), in.Thumbnail)
	if err != nil {
		s.store.Remove(filePath)
		return nil, models.NewInternalError(err)
	}

	video := &models.Video{
		Title:      in.Title,
		Filename:   filePath,
		Thumbnail:  thumbPath,
		CategoryID: category.ID,
		UserID:     in.UserID,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		// Roll the files back so storage and rows stay consistent.
		s.store.Remove(filePath)
		s.store.Remove(thumbPath)
		return nil, err
	}

	observability.UploadsTotal.WithLabelValues(category.Name).Inc()
	observability.UploadBytes.Observe(float64(size))

	return video, nil
}

// Visit records one view of the video and returns the page payload.
// Every visit counts, GET or POST, before any comment handling.
func (s *VideoService) Visit(ctx context.Context, videoID uint) (*VisitResult, error) {
	if err := s.videoRepo.IncrementViewCount(ctx, videoID); err != nil {
		return nil, err
	}
	observability.VideoViews.Inc()

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	next, err := s.videoRepo.NextAfter(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &VisitResult{Video: video, Next: next}, nil
}

// VisitWithComment records one view and creates a comment in a single
// transaction; the two either both commit or neither does.
func (s *VideoService) VisitWithComment(ctx context.Context, videoID, userID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment := &models.Comment{
		Content: content,
		VideoID: videoID,
		UserID:  userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.videoRepo.WithTx(tx).IncrementViewCount(ctx, videoID); err != nil {
			return err
		}
		return s.commentRepo.WithTx(tx).Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	observability.VideoViews.Inc()
	return comment, nil
}

// ListByCategory returns the category's videos in natural (ID) order.
func (s *VideoService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Video, error) {
	return s.videoRepo.ListByCategory(ctx, categoryID)
}
