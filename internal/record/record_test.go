package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/websiteboss/sitegen/pkg/profile"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")

	bp := profile.BusinessProfile{
		BusinessName: "Acme",
		Email:        "hello@acme.example",
		ColorTheme:   "green",
	}
	catalog := profile.ProductCatalog{
		Products:       []profile.Product{{ProductName: "Widget", ProductPrice: 499}},
		PaymentMethods: []string{"cash"},
		Categories:     "Tools",
	}

	if err := Save(dir, bp, catalog, "Electronics"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := Load(dir)
	want := Records{Profile: bp, Catalog: catalog, Industry: "Electronics"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingDirectoryDegrades(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if diff := cmp.Diff(Records{}, got); diff != "" {
		t.Fatalf("missing directory should load zero records (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(Records{}, Load("")); diff != "" {
		t.Fatalf("empty directory path should load zero records (-want +got):\n%s", diff)
	}
}

func TestLoad_CorruptFilesDegradePerRecord(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BusinessFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ProductFile), []byte(`{"products": [{"productName": "Widget"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndustryFile), []byte("  Grocery\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load(dir)
	if diff := cmp.Diff(profile.BusinessProfile{}, got.Profile); diff != "" {
		t.Fatalf("corrupt profile should degrade to zero (-want +got):\n%s", diff)
	}
	if len(got.Catalog.Products) != 1 || got.Catalog.Products[0].ProductName != "Widget" {
		t.Fatalf("catalog should still load: %+v", got.Catalog)
	}
	if got.Industry != "Grocery" {
		t.Fatalf("industry should be trimmed: %q", got.Industry)
	}
}

func TestSave_RequiresDirectory(t *testing.T) {
	if err := Save("", profile.BusinessProfile{}, profile.ProductCatalog{}, ""); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
