package server

import (
	"synthlab/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetChemComponents handles GET /api/chemcomp, narrowed to assigned
// components with ?assigned_only=1.
func (s *Server) GetChemComponents(c *fiber.Ctx) error {
	assignedOnly := c.QueryBool("assigned_only")

	comps, err := s.catalogService.ListChemComponents(c.Context(), currentUserID(c), assignedOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comps)
}

// CreateChemComponent handles POST /api/chemcomp
func (s *Server) CreateChemComponent(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comp, err := s.catalogService.CreateChemComponent(c.Context(), currentUserID(c), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comp)
}
