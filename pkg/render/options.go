package render

import "github.com/websiteboss/sitegen/pkg/theme"

// RenderOptions carry per-request data that renderers consume without
// touching the site model pipeline.
type RenderOptions struct {
	// Theme is the resolved palette driving every colour decision. When nil,
	// renderers fall back to the default palette so rendering stays total.
	Theme *theme.Palette
}

// Palette returns the effective palette for these options.
func (o RenderOptions) Palette() theme.Palette {
	if o.Theme != nil {
		return *o.Theme
	}
	return theme.Resolve("")
}
