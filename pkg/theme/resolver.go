package theme

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// DefaultTheme is the palette used when a theme id is missing or unknown.
const DefaultTheme = "blue"

//go:embed themes.yaml
var themesYAML []byte

type themeFile struct {
	Version string      `yaml:"version"`
	Themes  []themeSpec `yaml:"themes"`
}

type themeSpec struct {
	Name   string            `yaml:"name"`
	Tokens map[string]string `yaml:"tokens"`
}

// Resolver maps theme ids onto palettes. It is a total function over its
// input: every string, including the empty one, resolves to a complete
// palette. Resolver also satisfies go-theme's ThemeSelector so callers that
// speak manifests can query the same table.
type Resolver struct {
	manifests map[string]*theme.Manifest
	palettes  map[string]Palette
}

var _ theme.ThemeSelector = (*Resolver)(nil)

var (
	defaultResolverOnce sync.Once
	defaultResolver     *Resolver
)

// NewResolver builds a resolver from the embedded palette table. The table is
// fixed at build time, so construction only fails if the embedded document is
// edited into an invalid state.
func NewResolver() (*Resolver, error) {
	var file themeFile
	if err := yaml.Unmarshal(themesYAML, &file); err != nil {
		return nil, fmt.Errorf("theme: parse embedded palette table: %w", err)
	}
	if len(file.Themes) == 0 {
		return nil, fmt.Errorf("theme: embedded palette table is empty")
	}

	registry := theme.NewRegistry()
	r := &Resolver{
		manifests: make(map[string]*theme.Manifest, len(file.Themes)),
		palettes:  make(map[string]Palette, len(file.Themes)),
	}
	for _, spec := range file.Themes {
		name := strings.ToLower(strings.TrimSpace(spec.Name))
		if name == "" {
			return nil, fmt.Errorf("theme: palette entry without a name")
		}
		manifest := &theme.Manifest{
			Name:    name,
			Version: file.Version,
			Tokens:  spec.Tokens,
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("theme: register manifest %q: %w", name, err)
		}
		r.manifests[name] = manifest
		r.palettes[name] = paletteFromTokens(name, spec.Tokens)
	}

	if _, ok := r.palettes[DefaultTheme]; !ok {
		return nil, fmt.Errorf("theme: palette table is missing the %q fallback", DefaultTheme)
	}
	return r, nil
}

// Default returns the process-wide resolver backed by the embedded table.
func Default() *Resolver {
	defaultResolverOnce.Do(func() {
		r, err := NewResolver()
		if err != nil {
			// The embedded table ships with the binary; failing to parse it
			// is a build defect, not a runtime condition.
			panic(err)
		}
		defaultResolver = r
	})
	return defaultResolver
}

// Resolve returns the palette for the given theme id, falling back to the
// blue palette for unknown or empty ids. The result is always complete.
func (r *Resolver) Resolve(themeID string) Palette {
	name := strings.ToLower(strings.TrimSpace(themeID))
	if palette, ok := r.palettes[name]; ok {
		return palette
	}
	return r.palettes[DefaultTheme]
}

// Select implements go-theme's ThemeSelector over the fixed palette table.
// Unknown names resolve to the fallback manifest rather than erroring, which
// keeps theme selection total for renderers.
func (r *Resolver) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	manifest, ok := r.manifests[key]
	if !ok {
		key = DefaultTheme
		manifest = r.manifests[key]
	}
	return &theme.Selection{
		Theme:    key,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Names lists the registered theme ids in sorted order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve is a convenience wrapper over the default resolver.
func Resolve(themeID string) Palette {
	return Default().Resolve(themeID)
}
