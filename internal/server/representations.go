package server

import (
	"synthlab/internal/models"

	"github.com/gofiber/fiber/v2"
)

// synthesizeOp selects which representation of a synthesize record an
// endpoint returns. List and write responses carry association ID lists,
// the detail view expands them into objects, and the image view is minimal.
type synthesizeOp int

const (
	opSynthesizeList synthesizeOp = iota
	opSynthesizeDetail
	opSynthesizeWrite
	opSynthesizeImage
)

var synthesizeViews = map[synthesizeOp]func(*models.Synthesize) fiber.Map{
	opSynthesizeList:   synthesizeSummary,
	opSynthesizeWrite:  synthesizeSummary,
	opSynthesizeDetail: synthesizeDetail,
	opSynthesizeImage:  synthesizeImage,
}

// renderSynthesize builds the JSON body for rec under the given operation.
func renderSynthesize(op synthesizeOp, rec *models.Synthesize) fiber.Map {
	return synthesizeViews[op](rec)
}

func synthesizeSummary(rec *models.Synthesize) fiber.Map {
	return fiber.Map{
		"id":         rec.ID,
		"title":      rec.Title,
		"time_years": rec.TimeYears,
		"chance":     rec.Chance,
		"link":       rec.Link,
		"image":      rec.Image,
		"tags":       rec.TagIDs(),
		"chemcomps":  rec.ChemComponentIDs(),
	}
}

func synthesizeDetail(rec *models.Synthesize) fiber.Map {
	tags := make([]fiber.Map, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tags = append(tags, fiber.Map{"id": t.ID, "name": t.Name})
	}
	comps := make([]fiber.Map, 0, len(rec.ChemComponents))
	for _, cc := range rec.ChemComponents {
		comps = append(comps, fiber.Map{"id": cc.ID, "name": cc.Name})
	}

	return fiber.Map{
		"id":         rec.ID,
		"title":      rec.Title,
		"time_years": rec.TimeYears,
		"chance":     rec.Chance,
		"link":       rec.Link,
		"image":      rec.Image,
		"tags":       tags,
		"chemcomps":  comps,
	}
}

func synthesizeImage(rec *models.Synthesize) fiber.Map {
	return fiber.Map{
		"id":    rec.ID,
		"image": rec.Image,
	}
}
