package server

import (
	"synthlab/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tag. With ?assigned_only=1 the list is narrowed
// to tags referenced by at least one of the requester's records.
func (s *Server) GetTags(c *fiber.Ctx) error {
	assignedOnly := c.QueryBool("assigned_only")

	tags, err := s.catalogService.ListTags(c.Context(), currentUserID(c), assignedOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tags)
}

// CreateTag handles POST /api/tag
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.catalogService.CreateTag(c.Context(), currentUserID(c), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
