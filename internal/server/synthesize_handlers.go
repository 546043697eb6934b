package server

import (
	"io"

	"synthlab/internal/models"
	"synthlab/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type synthesizeRequest struct {
	Title       string          `json:"title"`
	TimeYears   int             `json:"time_years"`
	Chance      decimal.Decimal `json:"chance"`
	Link        string          `json:"link"`
	TagIDs      []uint          `json:"tags"`
	ChemCompIDs []uint          `json:"chemcomps"`
}

func (r synthesizeRequest) toInput() service.SynthesizeInput {
	return service.SynthesizeInput{
		Title:       r.Title,
		TimeYears:   r.TimeYears,
		Chance:      r.Chance,
		Link:        r.Link,
		TagIDs:      r.TagIDs,
		ChemCompIDs: r.ChemCompIDs,
	}
}

// GetSynthesizes handles GET /api/synthesize. The optional ?tags= and
// ?chemcomps= parameters take comma-separated IDs and narrow the list to
// records referencing any of them.
func (s *Server) GetSynthesizes(c *fiber.Ctx) error {
	tagIDs, err := s.parseIDList(c, "tags")
	if err != nil {
		return nil
	}
	chemCompIDs, err := s.parseIDList(c, "chemcomps")
	if err != nil {
		return nil
	}

	recs, err := s.synthesizeService.List(c.Context(), currentUserID(c), tagIDs, chemCompIDs)
	if err != nil {
		return respondServiceError(c, err)
	}

	out := make([]fiber.Map, 0, len(recs))
	for i := range recs {
		out = append(out, renderSynthesize(opSynthesizeList, &recs[i]))
	}
	return c.JSON(out)
}

// GetSynthesize handles GET /api/synthesize/:id
func (s *Server) GetSynthesize(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rec, err := s.synthesizeService.Get(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(renderSynthesize(opSynthesizeDetail, rec))
}

// CreateSynthesize handles POST /api/synthesize
func (s *Server) CreateSynthesize(c *fiber.Ctx) error {
	var req synthesizeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rec, err := s.synthesizeService.Create(c.Context(), currentUserID(c), req.toInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(renderSynthesize(opSynthesizeWrite, rec))
}

// ReplaceSynthesize handles PUT /api/synthesize/:id. Association lists
// omitted from the body are cleared, consistent with full-replace semantics.
func (s *Server) ReplaceSynthesize(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req synthesizeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rec, err := s.synthesizeService.Replace(c.Context(), currentUserID(c), id, req.toInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(renderSynthesize(opSynthesizeWrite, rec))
}

// PatchSynthesize handles PATCH /api/synthesize/:id. Absent fields are left
// untouched; a present-but-empty association list clears that set.
func (s *Server) PatchSynthesize(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string          `json:"title"`
		TimeYears   *int             `json:"time_years"`
		Chance      *decimal.Decimal `json:"chance"`
		Link        *string          `json:"link"`
		TagIDs      *[]uint          `json:"tags"`
		ChemCompIDs *[]uint          `json:"chemcomps"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rec, err := s.synthesizeService.Patch(c.Context(), currentUserID(c), id, service.SynthesizePatch{
		Title:       req.Title,
		TimeYears:   req.TimeYears,
		Chance:      req.Chance,
		Link:        req.Link,
		TagIDs:      req.TagIDs,
		ChemCompIDs: req.ChemCompIDs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(renderSynthesize(opSynthesizeWrite, rec))
}

// DeleteSynthesize handles DELETE /api/synthesize/:id
func (s *Server) DeleteSynthesize(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.synthesizeService.Delete(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadSynthesizeImage handles POST /api/synthesize/:id/upload-image with a
// multipart "image" field.
func (s *Server) UploadSynthesizeImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("An 'image' file field is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read the uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read the uploaded file"))
	}

	rec, err := s.imageService.Attach(c.Context(), currentUserID(c), id, fileHeader.Filename, content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(renderSynthesize(opSynthesizeImage, rec))
}
