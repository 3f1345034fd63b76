// Package catalog holds the static template catalog. The catalog is built
// once at startup and injected into handlers by reference; nothing mutates
// it after construction.
package catalog

import (
	"quickreel/backend/models"
)

// Catalog is an ordered, id-addressable set of templates.
type Catalog struct {
	templates []models.Template
	byID      map[string]models.Template
}

// New builds a catalog from the given templates, preserving their order.
// The input slice is copied so later mutation by the caller has no effect.
func New(templates []models.Template) *Catalog {
	c := &Catalog{
		templates: make([]models.Template, len(templates)),
		byID:      make(map[string]models.Template, len(templates)),
	}
	copy(c.templates, templates)
	for _, t := range c.templates {
		c.byID[t.ID] = t
	}
	return c
}

// Default returns the built-in template catalog.
func Default() *Catalog {
	return New([]models.Template{
		{
			ID:          "reel-916-bold",
			Name:        "Reel 9:16 • Bold",
			AspectRatio: "9:16",
			Description: "Vertical format with bold headline and punchy cuts.",
			Preset: map[string]interface{}{
				"font":        "Inter ExtraBold",
				"color":       "#3b82f6",
				"lower_third": true,
			},
		},
		{
			ID:          "corporate-169-clean",
			Name:        "Corporate 16:9 • Clean",
			AspectRatio: "16:9",
			Description: "Clean lower-thirds, logo bug, subtle transitions.",
			Preset: map[string]interface{}{
				"font":        "Inter Medium",
				"color":       "#22d3ee",
				"lower_third": true,
			},
		},
		{
			ID:          "event-11-pop",
			Name:        "Event Montage 1:1 • Pop",
			AspectRatio: "1:1",
			Description: "Square montage with beat-matched cuts and stickers.",
			Preset: map[string]interface{}{
				"font":     "Inter Black",
				"color":    "#f59e0b",
				"stickers": true,
			},
		},
	})
}

// List returns the templates in declaration order. The slice is a copy;
// callers may not reorder the catalog through it.
func (c *Catalog) List() []models.Template {
	out := make([]models.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Find looks up a template by ID. Matching is exact and case-sensitive.
func (c *Catalog) Find(id string) (models.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}
