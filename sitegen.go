// Package sitegen renders a single-page marketing website from the records a
// setup wizard collects: a business profile, a product catalog, and an
// industry tag. It produces both a live-preview view tree and a standalone
// downloadable HTML document from the same substituted content model, so the
// two outputs cannot drift apart.
package sitegen

import (
	"context"

	"github.com/websiteboss/sitegen/pkg/export"
	"github.com/websiteboss/sitegen/pkg/orchestrator"
	"github.com/websiteboss/sitegen/pkg/profile"
	"github.com/websiteboss/sitegen/pkg/render"
	"github.com/websiteboss/sitegen/pkg/renderers/preview"
	"github.com/websiteboss/sitegen/pkg/sitemodel"
	"github.com/websiteboss/sitegen/pkg/theme"
)

// BusinessProfile is the wizard's business record.
type BusinessProfile = profile.BusinessProfile

// ProductCatalog is the wizard's commerce record.
type ProductCatalog = profile.ProductCatalog

// Product is a single catalog entry.
type Product = profile.Product

// Palette is a resolved theme palette.
type Palette = theme.Palette

// Site is the substituted content model shared by both renderers.
type Site = sitemodel.Site

// Request describes the inputs of a render cycle; aliased from the
// orchestrator for convenience.
type Request = orchestrator.Request

// RenderOptions carries per-request renderer data.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Result bundles the two outputs of a full render cycle.
type Result struct {
	// Preview is the live view tree shown on screen.
	Preview preview.Node
	// Document is the standalone exportable HTML file.
	Document []byte
	// Filename is the sanitised download name for Document.
	Filename string
}

// Render runs the whole cycle once: load records, build the site model,
// resolve the palette, and produce both the preview tree and the exportable
// document. The records are read exactly once; both outputs come from the
// same site model, so identical inputs yield identical results.
func Render(ctx context.Context, req Request, options ...orchestrator.Option) (*Result, error) {
	gen := orchestrator.New(options...)

	site, err := gen.BuildSite(ctx, req)
	if err != nil {
		return nil, err
	}
	palette := gen.Palette(site.ThemeID)

	renderOptions := req.RenderOptions
	if renderOptions.Theme == nil {
		renderOptions.Theme = &palette
	}
	document, err := gen.RenderSite(ctx, site, "document", renderOptions)
	if err != nil {
		return nil, err
	}

	return &Result{
		Preview:  preview.BuildTree(site, palette),
		Document: document,
		Filename: export.Filename(site.Name),
	}, nil
}

// GenerateDocument loads the wizard's session directory and renders the
// exportable document. It is the simplest entry point for callers that just
// want the downloadable HTML.
func GenerateDocument(ctx context.Context, storeDir string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		StoreDir: storeDir,
		Renderer: "document",
	})
}

// ResolveTheme maps a theme id onto its palette, falling back to the blue
// palette for unknown ids.
func ResolveTheme(themeID string) Palette {
	return theme.Resolve(themeID)
}
