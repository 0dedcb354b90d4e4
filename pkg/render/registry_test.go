package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/websiteboss/sitegen/pkg/sitemodel"
	"github.com/websiteboss/sitegen/pkg/theme"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(ctx context.Context, site sitemodel.Site, options RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&stubRenderer{name: "document"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("document")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "document" {
		t.Fatalf("renderer name: got %q", renderer.Name())
	}
	if !registry.Has("document") {
		t.Fatal("Has should report a registered renderer")
	}
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Fatal("expected error for a renderer without a name")
	}

	if err := registry.Register(&stubRenderer{name: "preview"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "preview"}); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	if _, err := NewRegistry().Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "preview"})
	registry.MustRegister(&stubRenderer{name: "document"})

	want := []string{"document", "preview"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
}

func TestRenderOptions_PaletteFallsBack(t *testing.T) {
	var options RenderOptions
	if diff := cmp.Diff(theme.Resolve("blue"), options.Palette()); diff != "" {
		t.Fatalf("nil theme should fall back to the default palette (-want +got):\n%s", diff)
	}

	green := theme.Resolve("green")
	options = RenderOptions{Theme: &green}
	if diff := cmp.Diff(green, options.Palette()); diff != "" {
		t.Fatalf("explicit palette should pass through (-want +got):\n%s", diff)
	}
}
