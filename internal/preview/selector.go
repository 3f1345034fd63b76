// Package preview implements the mock instant-edit processor. It never
// touches asset bytes; it picks a representative asset reference by
// extension and pairs it with the resolved template.
package preview

import (
	"strings"

	"quickreel/backend/internal/apperror"
	"quickreel/backend/internal/catalog"
	"quickreel/backend/models"
)

// Preview types reported in Selection.PreviewType.
const (
	TypeVideo       = "video"
	TypeImage       = "image"
	TypePlaceholder = "placeholder"
)

// PlaceholderURL is the preview reference used when no asset classifies
// as video or image.
const PlaceholderURL = "https://placehold.co/1280x720?text=Instant+Preview"

// Notes is the fixed explanation attached to every selection.
const Notes = "Instant edit applied. This preview uses your first uploaded media. " +
	"In a full pipeline, we would trim, add lower-thirds, color grade, " +
	"and export in the template's aspect ratio."

var (
	videoExts = []string{".mp4", ".mov", ".mkv", ".webm"}
	imageExts = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// Selection is the outcome of an instant edit: the resolved template, the
// chosen preview reference and its type, and the asset list echoed back
// unchanged.
type Selection struct {
	Template    models.Template `json:"template"`
	PreviewType string          `json:"preview_type"`
	PreviewURL  string          `json:"preview_url"`
	UsedAssets  []string        `json:"used_assets"`
	Notes       string          `json:"notes"`
}

// Selector resolves instant-edit requests against a template catalog.
type Selector struct {
	catalog *catalog.Catalog
}

// NewSelector creates a Selector backed by the given catalog.
func NewSelector(c *catalog.Catalog) *Selector {
	return &Selector{catalog: c}
}

// Select resolves the template, then picks a preview from the assets:
// first video match wins, then first image match, then the placeholder.
// Template resolution happens before the empty-assets check, so an unknown
// template id is reported as not found even with no assets.
func (s *Selector) Select(templateID string, assets []string) (*Selection, error) {
	tpl, ok := s.catalog.Find(templateID)
	if !ok {
		return nil, apperror.NewNotFound("Template not found")
	}

	if len(assets) == 0 {
		return nil, apperror.NewValidation("No assets provided")
	}

	previewURL, previewType := classify(assets)

	return &Selection{
		Template:    tpl,
		PreviewType: previewType,
		PreviewURL:  previewURL,
		UsedAssets:  assets,
		Notes:       Notes,
	}, nil
}

// classify runs two ordered passes over the assets, videos before images.
// Matching is plain suffix testing on the lower-cased reference string, so
// anything after the extension (a query string, a fragment) defeats the
// match and the asset falls through.
func classify(assets []string) (url, kind string) {
	for _, ref := range assets {
		if hasAnySuffix(strings.ToLower(ref), videoExts) {
			return ref, TypeVideo
		}
	}
	for _, ref := range assets {
		if hasAnySuffix(strings.ToLower(ref), imageExts) {
			return ref, TypeImage
		}
	}
	return PlaceholderURL, TypePlaceholder
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
