package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

// FeedService assembles paginated post listings for every surface: the home
// feed, a group's wall, an author's profile, and the personalized
// subscriptions feed.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// FeedPage is one window of posts plus the page metadata needed to render
// pagination controls.
type FeedPage struct {
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// GroupFeed is a group's description together with its post window.
type GroupFeed struct {
	Group models.Group `json:"group"`
	FeedPage
}

// AuthorProfile carries the profile header counters alongside the author's
// posts. Following is only meaningful when the viewer is authenticated.
type AuthorProfile struct {
	Author models.User `json:"author"`
	// PostsCount is the author's total post count across all pages.
	PostsCount int64 `json:"posts_count"`
	// Subscribers is how many readers follow this author.
	Subscribers int64 `json:"subscribers"`
	// Signed is how many authors this user follows.
	Signed    int64 `json:"signed"`
	Following bool  `json:"following"`
	FeedPage
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// HomeFeed returns the requested page of the global post listing. Pages are
// served from a short-lived cache snapshot; a post published inside the
// window becomes visible only after the snapshot expires.
func (s *FeedService) HomeFeed(ctx context.Context, requested int) (*FeedPage, error) {
	var feed FeedPage
	key := cache.HomeFeedKey(requested)

	fromCache, err := cache.Aside(ctx, key, &feed, cache.HomeFeedTTL, func() error {
		total, err := s.postRepo.Count(ctx)
		if err != nil {
			return err
		}
		offset, page := pagination.Window(total, requested)
		posts, err := s.postRepo.List(ctx, pagination.PerPage, offset)
		if err != nil {
			return err
		}
		feed = FeedPage{Posts: posts, Page: page}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "miss"
	if fromCache {
		outcome = "hit"
	}
	observability.FeedCacheHits.WithLabelValues(outcome).Inc()

	return &feed, nil
}

// GroupFeed returns the group identified by slug with the requested page of
// its posts. Group feeds are always read fresh.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, requested int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	offset, page := pagination.Window(total, requested)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, pagination.PerPage, offset)
	if err != nil {
		return nil, err
	}

	return &GroupFeed{
		Group:    *group,
		FeedPage: FeedPage{Posts: posts, Page: page},
	}, nil
}

// ProfileFeed returns the author's profile header and the requested page of
// their posts. viewerID zero means an anonymous reader; the Following flag
// then stays false.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, requested int, viewerID uint) (*AuthorProfile, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	offset, page := pagination.Window(total, requested)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, pagination.PerPage, offset)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	signed, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &AuthorProfile{
		Author:      *author,
		PostsCount:  total,
		Subscribers: subscribers,
		Signed:      signed,
		Following:   following,
		FeedPage:    FeedPage{Posts: posts, Page: page},
	}, nil
}

// FollowerFeed returns the requested page of posts from every author the
// user follows. A fresh post from a followed author appears immediately;
// this feed is never cached.
func (s *FeedService) FollowerFeed(ctx context.Context, userID uint, requested int) (*FeedPage, error) {
	total, err := s.postRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	offset, page := pagination.Window(total, requested)
	posts, err := s.postRepo.ListFollowing(ctx, userID, pagination.PerPage, offset)
	if err != nil {
		return nil, err
	}

	return &FeedPage{Posts: posts, Page: page}, nil
}
