package server

import (
	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username?page=N. The Following flag is
// populated only for authenticated viewers.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	profile, err := s.feedService.ProfileFeed(c.Context(), c.Params("username"), parsePage(c), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: userID,
		Bio:    req.Bio,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
