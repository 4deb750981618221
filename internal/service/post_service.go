package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// EditPostInput replaces the post's editable fields wholesale: a nil GroupID
// detaches the post from its group.
type EditPostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

const maxPostTextLen = 50000

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// EditPost updates the post when the caller is its author. Anyone else gets
// the stored post back untouched, with no error: the edit attempt quietly
// resolves to a view of the post.
func (s *PostService) EditPost(ctx context.Context, in EditPostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.UserID {
		return post, nil
	}

	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
