package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFollowFeed handles GET /api/follow?page=N: the subscriptions feed with
// posts from every followed author.
func (s *Server) GetFollowFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.FollowerFeed(c.Context(), userID, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}

// FollowAuthor handles POST /api/users/:username/follow. Following an
// already-followed author succeeds without effect. A self-follow attempt
// changes nothing and answers with the profile itself.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.SetFollowing(c.Context(), userID, username, true); err != nil {
		if models.IsCode(err, "SELF_FOLLOW") {
			profile, perr := s.feedService.ProfileFeed(c.Context(), username, 1, userID)
			if perr != nil {
				return respondServiceError(c, perr)
			}
			return c.JSON(profile)
		}
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": true})
}

// UnfollowAuthor handles DELETE /api/users/:username/follow. Unfollowing an
// author you never followed succeeds without effect.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.followService.SetFollowing(c.Context(), userID, c.Params("username"), false); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": false})
}
