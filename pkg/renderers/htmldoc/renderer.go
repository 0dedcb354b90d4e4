package htmldoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/websiteboss/sitegen/pkg/render"
	rendertemplate "github.com/websiteboss/sitegen/pkg/render/template"
	gotemplate "github.com/websiteboss/sitegen/pkg/render/template/gotemplate"
	"github.com/websiteboss/sitegen/pkg/sitemodel"
)

// ContentType is the MIME type of the exportable document.
const ContentType = "text/html; charset=utf-8"

// Option configures the document renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the standalone exportable HTML document. The document is
// dependency free apart from a single web font link; all styling lives in an
// embedded stylesheet derived from the resolved palette.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the document renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "document"
}

func (r *Renderer) ContentType() string {
	return ContentType
}

// Render executes the document template with the site model and the
// palette-derived stylesheet. Identical inputs yield identical bytes.
func (r *Renderer) Render(ctx context.Context, site sitemodel.Site, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("htmldoc: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("htmldoc: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/document.tmpl", map[string]any{
		"site":        site,
		"stylesheet":  buildStylesheet(options.Palette()),
		"hasServices": !site.Services.Empty(),
	})
	if err != nil {
		return nil, fmt.Errorf("htmldoc: render template: %w", err)
	}
	return []byte(result), nil
}
