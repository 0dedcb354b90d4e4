package render

import (
	"context"

	"github.com/websiteboss/sitegen/pkg/sitemodel"
)

// Renderer converts a Site into a byte representation (the standalone HTML
// document, the preview view tree, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, site sitemodel.Site, options RenderOptions) ([]byte, error)
}
