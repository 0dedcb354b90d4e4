package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/websiteboss/sitegen/internal/record"
	"github.com/websiteboss/sitegen/pkg/profile"
	"github.com/websiteboss/sitegen/pkg/render"
	"github.com/websiteboss/sitegen/pkg/renderers/htmldoc"
	"github.com/websiteboss/sitegen/pkg/renderers/preview"
	"github.com/websiteboss/sitegen/pkg/sitemodel"
	"github.com/websiteboss/sitegen/pkg/theme"
)

const defaultRendererName = "document"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects a custom site model builder.
func WithBuilder(builder *sitemodel.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeResolver injects a custom palette resolver.
func WithThemeResolver(resolver *theme.Resolver) Option {
	return func(o *Orchestrator) {
		o.themes = resolver
	}
}

// Orchestrator coordinates the full pipeline from stored wizard records to
// rendered output. It applies sensible defaults (document renderer, embedded
// templates, embedded palette table) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	builder         *sitemodel.Builder
	registry        *render.Registry
	themes          *theme.Resolver
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a site.
type Request struct {
	// Profile and Catalog allow callers to bypass the record store when they
	// already hold the decoded records.
	Profile *profile.BusinessProfile
	Catalog *profile.ProductCatalog

	// Industry selects the header glyph. Unknown values get the generic
	// storefront icon.
	Industry string

	// StoreDir locates the wizard's session directory. Used only when
	// Profile or Catalog is nil; missing or corrupt files degrade to empty
	// records.
	StoreDir string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request renderer data. The resolved palette
	// is filled in by the orchestrator unless the caller already set one.
	RenderOptions render.RenderOptions
}

// Generate executes the load → build → resolve-theme → render sequence and
// returns the rendered bytes. Record loading and theme resolution never
// fail; the only error sources are a missing renderer, a broken template, or
// context cancellation.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	site, err := o.BuildSite(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.RenderSite(ctx, site, req.Renderer, req.RenderOptions)
}

// RenderSite renders an already built site model with the named renderer.
// The record store is never consulted here: callers that need several
// outputs of one render cycle build the site once and render it repeatedly,
// which keeps the session files read exactly once per cycle.
func (o *Orchestrator) RenderSite(ctx context.Context, site sitemodel.Site, rendererName string, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	renderer, err := o.rendererFor(rendererName)
	if err != nil {
		return nil, err
	}

	if options.Theme == nil {
		palette := o.themes.Resolve(site.ThemeID)
		options.Theme = &palette
	}

	output, err := renderer.Render(ctx, site, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// BuildSite resolves the records and builds the substituted site model
// without rendering. Useful for callers that drive renderers themselves.
func (o *Orchestrator) BuildSite(ctx context.Context, req Request) (sitemodel.Site, error) {
	if ctx == nil {
		return sitemodel.Site{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return sitemodel.Site{}, err
	}
	if err := o.initialiseErr; err != nil {
		return sitemodel.Site{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return sitemodel.Site{}, err
		}
	}

	bp, catalog, industry := o.resolveRecords(req)
	return o.builder.Build(bp, catalog, industry), nil
}

// Palette resolves the palette the orchestrator would use for the request's
// site. Exposed so callers can keep preview and export visually aligned.
func (o *Orchestrator) Palette(themeID string) theme.Palette {
	return o.themes.Resolve(themeID)
}

func (o *Orchestrator) resolveRecords(req Request) (profile.BusinessProfile, profile.ProductCatalog, string) {
	if req.Profile != nil && req.Catalog != nil {
		return *req.Profile, *req.Catalog, req.Industry
	}

	records := record.Load(req.StoreDir)
	bp := records.Profile
	catalog := records.Catalog
	industry := records.Industry

	if req.Profile != nil {
		bp = *req.Profile
	}
	if req.Catalog != nil {
		catalog = *req.Catalog
	}
	if req.Industry != "" {
		industry = req.Industry
	}
	return bp, catalog, industry
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.builder == nil {
		o.builder = sitemodel.NewBuilder()
	}
	if o.themes == nil {
		o.themes = theme.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(preview.New())
		document, err := htmldoc.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(document)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
