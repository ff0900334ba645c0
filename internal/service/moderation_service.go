package service

import (
	"context"

	"clipnest/internal/models"
	"clipnest/internal/repository"

	"gorm.io/gorm"
)

// ModerationService performs admin-only deletions. The admin check is
// injected so the service does not depend on how accounts are stored.
type ModerationService struct {
	db          *gorm.DB
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	db *gorm.DB,
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ModerationService {
	return &ModerationService{
		db:          db,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		isAdmin:     isAdmin,
	}
}

func (s *ModerationService) requireAdmin(ctx context.Context, actorID uint) error {
	admin, err := s.isAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !admin {
		return models.NewForbiddenError("Admin access required")
	}
	return nil
}

// DeleteComment removes a single comment.
func (s *ModerationService) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// DeleteVideo removes a video and all of its comments in one transaction.
// The stored file is left on disk.
func (s *ModerationService) DeleteVideo(ctx context.Context, actorID, videoID uint) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).DeleteByVideo(ctx, videoID); err != nil {
			return err
		}
		return s.videoRepo.WithTx(tx).Delete(ctx, videoID)
	})
}
