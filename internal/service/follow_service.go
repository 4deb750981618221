package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// SetFollowing drives the follow edge to the desired state. Repeating the
// same call is a no-op either way; only following yourself is refused.
func (s *FollowService) SetFollowing(ctx context.Context, userID uint, authorUsername string, follow bool) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return models.NewNotFoundError("User", authorUsername)
	}

	if author.ID == userID {
		if follow {
			return models.NewSelfFollowError()
		}
		// Unfollowing yourself deletes nothing; fall through for the no-op.
	}

	if follow {
		return s.followRepo.Create(ctx, userID, author.ID)
	}
	return s.followRepo.Delete(ctx, userID, author.ID)
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

// ListFollowedAuthors returns the authors the user is subscribed to.
func (s *FollowService) ListFollowedAuthors(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.ListAuthors(ctx, userID)
}
