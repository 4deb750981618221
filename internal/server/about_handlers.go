package server

import (
	"github.com/gofiber/fiber/v2"
)

// AboutAuthor handles GET /api/about/author
func (s *Server) AboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the author",
		"body":  "Yatube is a small blog platform built as a learning project. Posts, groups, comments, and subscriptions: nothing more, nothing less.",
	})
}

// AboutTech handles GET /api/about/tech
func (s *Server) AboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Technologies",
		"stack": []string{
			"Go",
			"Fiber",
			"GORM",
			"PostgreSQL",
			"Redis",
			"Prometheus",
			"OpenTelemetry",
		},
	})
}
