package server

import (
	"yatube/internal/cache"
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context(), 100, 0)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:slug. Group descriptions change rarely,
// so the lookup goes through the cache.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var group models.Group
	_, err := cache.Aside(c.Context(), cache.GroupKey(slug), &group, cache.GroupTTL, func() error {
		fetched, err := s.groupRepo.GetBySlug(c.Context(), slug)
		if err != nil {
			return err
		}
		group = *fetched
		return nil
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(group)
}

// GetGroupFeed handles GET /api/groups/:slug/posts?page=N
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GroupFeed(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}
