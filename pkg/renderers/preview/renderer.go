package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/websiteboss/sitegen/pkg/render"
	"github.com/websiteboss/sitegen/pkg/sitemodel"
)

// Renderer implements render.Renderer for the live preview. The serialized
// form is the JSON view tree; programmatic consumers call BuildTree directly
// and skip the encoding.
type Renderer struct{}

// New constructs the preview renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "preview"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render builds the view tree and encodes it. encoding/json sorts map keys,
// so identical inputs always produce identical bytes.
func (r *Renderer) Render(ctx context.Context, site sitemodel.Site, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("preview: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree := BuildTree(site, options.Palette())
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("preview: encode view tree: %w", err)
	}
	return out, nil
}
