package service

import (
	"context"

	"clipnest/internal/models"
	"clipnest/internal/repository"
)

// ThreadService handles discussion threads and their posts.
type ThreadService struct {
	threadRepo   repository.ThreadRepository
	categoryRepo repository.CategoryRepository
}

// CreateThreadInput carries a new thread submission.
type CreateThreadInput struct {
	CategoryID uint
	Title      string
}

// ThreadPage is the thread view payload: the thread and all of its posts
// in creation order.
type ThreadPage struct {
	Thread *models.Thread
	Posts  []models.Post
}

// NewThreadService creates a new ThreadService
func NewThreadService(threadRepo repository.ThreadRepository, categoryRepo repository.CategoryRepository) *ThreadService {
	return &ThreadService{threadRepo: threadRepo, categoryRepo: categoryRepo}
}

// CreateThread creates a thread in the given category.
func (s *ThreadService) CreateThread(ctx context.Context, in CreateThreadInput) (*models.Thread, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	thread := &models.Thread{
		Title:      in.Title,
		CategoryID: category.ID,
	}
	if err := s.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// GetThread returns the thread and its posts.
func (s *ThreadService) GetThread(ctx context.Context, threadID uint) (*ThreadPage, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	posts, err := s.threadRepo.ListPosts(ctx, threadID)
	if err != nil {
		return nil, err
	}

	return &ThreadPage{Thread: thread, Posts: posts}, nil
}

// AddPost appends a post to the thread. Posts carry no author.
func (s *ThreadService) AddPost(ctx context.Context, threadID uint, content string) (*models.Post, error) {
	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Content:  content,
		ThreadID: threadID,
	}
	if err := s.threadRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListByCategory returns the category's threads, newest first.
func (s *ThreadService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Thread, error) {
	return s.threadRepo.ListByCategory(ctx, categoryID)
}
