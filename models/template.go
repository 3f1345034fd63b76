package models

// Template represents a preset template in the catalog.
// Preset values are opaque styling hints (fonts, colors, feature flags)
// passed through to clients uninterpreted.
type Template struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	AspectRatio string                 `json:"aspect_ratio"`
	Description string                 `json:"description"`
	Preset      map[string]interface{} `json:"preset"`
}
