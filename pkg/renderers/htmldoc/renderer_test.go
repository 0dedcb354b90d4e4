package htmldoc

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/websiteboss/sitegen/pkg/profile"
	"github.com/websiteboss/sitegen/pkg/render"
	"github.com/websiteboss/sitegen/pkg/sitemodel"
	"github.com/websiteboss/sitegen/pkg/theme"
)

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

func renderSite(t *testing.T, bp profile.BusinessProfile, catalog profile.ProductCatalog, industry string) string {
	t.Helper()

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	site := sitemodel.NewBuilder(sitemodel.WithClock(fixedClock)).Build(bp, catalog, industry)
	palette := theme.Resolve(site.ThemeID)
	out, err := renderer.Render(context.Background(), site, render.RenderOptions{Theme: &palette})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

// fixedClock pins the builder clock so rendered documents are stable across
// test runs.
func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
}

func TestRender_GreenElectronicsStore(t *testing.T) {
	bp := profile.BusinessProfile{
		BusinessName: "Acme",
		ColorTheme:   "green",
		Email:        "hello@acme.example",
	}
	catalog := profile.ProductCatalog{
		Products: []profile.Product{{ProductName: "Widget", ProductPrice: 499}},
	}

	html := renderSite(t, bp, catalog, "Electronics")

	for _, want := range []string{
		"<title>Acme</title>",
		"📱",
		"#059669",
		"<h3 class=\"product-name\">Widget</h3>",
		"₹499.00",
		"📧 hello@acme.example",
		"fonts.googleapis.com/css2?family=Inter",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document is missing %q", want)
		}
	}
	if strings.Contains(html, "No products available") {
		t.Error("placeholder should not appear when the catalog has products")
	}
	if strings.Contains(html, "#4F46E5") {
		t.Error("blue primary leaked into a green document")
	}
}

func TestRender_EmptyCatalogShowsPlaceholder(t *testing.T) {
	html := renderSite(t, profile.BusinessProfile{}, profile.ProductCatalog{}, "")

	if !strings.Contains(html, "No products available") {
		t.Error("empty catalog should render the placeholder")
	}
	if strings.Contains(html, "services-section") {
		t.Error("services section should be absent without service data")
	}
	if strings.Contains(html, "contact-info") {
		t.Error("header contact block should be absent when nothing was provided")
	}
}

func TestRender_DefaultsRenderVerbatim(t *testing.T) {
	html := renderSite(t, profile.BusinessProfile{}, profile.ProductCatalog{}, "")

	for _, want := range []string{
		"<title>My Business</title>",
		"About Our Business",
		"Welcome to our business",
		"We are committed to providing excellent products and services to our customers.",
		"We offer a wide range of quality products and services.",
		"Our offerings are tailored to meet the needs of our valued customers.",
		"📧 contact@business.com",
		"📞 Phone not provided",
		"Address not provided",
		"Your trusted business partner",
		sitemodel.GenericIndustryIcon,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document is missing %q", want)
		}
	}
	if strings.Contains(html, "Established:") {
		t.Error("established line should be absent when the profile has no year")
	}
}

func TestRender_ProductOrderPreserved(t *testing.T) {
	catalog := profile.ProductCatalog{
		Products: []profile.Product{
			{ProductName: "Zeta"},
			{ProductName: "Alpha"},
			{ProductName: "Mu"},
		},
	}
	html := renderSite(t, profile.BusinessProfile{}, catalog, "")

	zeta := strings.Index(html, ">Zeta<")
	alpha := strings.Index(html, ">Alpha<")
	mu := strings.Index(html, ">Mu<")
	if zeta < 0 || alpha < 0 || mu < 0 {
		t.Fatalf("product names missing: %d %d %d", zeta, alpha, mu)
	}
	if !(zeta < alpha && alpha < mu) {
		t.Fatalf("catalog order not preserved: %d %d %d", zeta, alpha, mu)
	}
}

func TestRender_WhatsAppConditional(t *testing.T) {
	withNumber := renderSite(t, profile.BusinessProfile{WhatsApp: "+91 90000 00000"}, profile.ProductCatalog{}, "")
	if got := strings.Count(withNumber, "📱 +91 90000 00000"); got != 2 {
		// Header chip plus footer contact line.
		t.Fatalf("whatsapp line count: want 2, got %d", got)
	}

	without := renderSite(t, profile.BusinessProfile{}, profile.ProductCatalog{}, "")
	if strings.Contains(without, "📱") {
		t.Fatal("whatsapp glyph should be absent when no number was given")
	}
}

func TestRender_ServicesSection(t *testing.T) {
	catalog := profile.ProductCatalog{
		PaymentMethods:  []string{"cash", "upi"},
		DeliveryOptions: []string{"pickup"},
		Categories:      "Tools",
		DeliveryAreas:   "Citywide",
	}
	html := renderSite(t, profile.BusinessProfile{}, catalog, "")

	for _, want := range []string{
		"services-section",
		"💳", "🚚", "📂", "🗺️",
		">CASH</span>", ">UPI</span>", ">Pickup</span>",
		"Product Categories", "Delivery Areas",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("services section is missing %q", want)
		}
	}
}

func TestRender_EscapesUserText(t *testing.T) {
	bp := profile.BusinessProfile{BusinessDescription: "Tools & dies <fast>"}
	html := renderSite(t, bp, profile.ProductCatalog{}, "")

	if !strings.Contains(html, "Tools &amp; dies") {
		t.Error("ampersand should be escaped exactly once")
	}
	if strings.Contains(html, "&amp;amp;") {
		t.Error("ampersand was double-escaped")
	}
	if strings.Contains(html, "<fast>") {
		t.Error("angle brackets should not reach the document unescaped")
	}
}

func TestRender_DeterministicBytes(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	site := sitemodel.NewBuilder(sitemodel.WithClock(fixedClock)).Build(
		profile.BusinessProfile{BusinessName: "Acme", ColorTheme: "purple"},
		profile.ProductCatalog{Products: []profile.Product{{ProductName: "Widget", ProductPrice: 499}}},
		"Electronics",
	)
	palette := theme.Resolve(site.ThemeID)
	options := render.RenderOptions{Theme: &palette}

	first, err := renderer.Render(context.Background(), site, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderer.Render(context.Background(), site, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeated renders produced different bytes")
	}
}

func TestRender_Snapshot(t *testing.T) {
	bp := profile.BusinessProfile{
		BusinessName:        "Sharma Electronics",
		BusinessDescription: "Gadgets for every home",
		EstablishedYear:     "2012",
		Email:               "shop@sharma.example",
		Phone:               "080-1234",
		WhatsApp:            "+91 90000 00000",
		Address:             "5 MG Road",
		Website:             "https://sharma.example",
		ColorTheme:          "orange",
	}
	catalog := profile.ProductCatalog{
		Products: []profile.Product{
			{ProductName: "Widget", ProductPrice: 499, ProductDescription: "Handy", ProductCategory: "Tools", ProductSKU: "W-1"},
			{ProductName: "Gadget", ProductPrice: 125000},
		},
		PaymentMethods:  []string{"cash", "upi"},
		DeliveryOptions: []string{"home delivery"},
		Categories:      "Tools, Gadgets",
		DeliveryAreas:   "Citywide",
	}

	snaps.MatchSnapshot(t, renderSite(t, bp, catalog, "Electronics"))
}
