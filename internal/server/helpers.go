package server

import (
	"errors"

	"yatube/internal/models"
	"yatube/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		label := "ID"
		if param == "commentId" {
			label = "comment ID"
		}
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage reads the `page` query parameter with forgiving semantics.
func parsePage(c *fiber.Ctx) int {
	return pagination.ParsePage(c.Query("page"))
}

// respondServiceError maps an AppError coming out of the service layer to
// the matching HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsCode(err, "NOT_FOUND"):
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.IsCode(err, "VALIDATION_ERROR"):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.IsCode(err, "UNAUTHORIZED"):
		return models.RespondWithError(c, fiber.StatusForbidden, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
