package sitemodel

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/websiteboss/sitegen/pkg/profile"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.March, 14, 12, 0, 0, 0, time.UTC)
	}
}

func TestBuild_EmptyInputsUseDefaults(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock(2026)))

	site := builder.Build(profile.BusinessProfile{}, profile.ProductCatalog{}, "")

	want := Site{
		Title:        "My Business",
		AboutTitle:   "About Our Business",
		IndustryIcon: GenericIndustryIcon,
		Tagline:      "Welcome to our business",
		Contact: Contact{
			Email: "contact@business.com",
			Phone: "Phone not provided",
		},
		About: About{
			Story:          "We are committed to providing excellent products and services to our customers.",
			Services:       "We offer a wide range of quality products and services.",
			TargetAudience: "Our offerings are tailored to meet the needs of our valued customers.",
		},
		Footer: Footer{
			Blurb:   "Your trusted business partner",
			Address: "Address not provided",
			Year:    "2026",
		},
	}
	if diff := cmp.Diff(want, site); diff != "" {
		t.Fatalf("site mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_ProvidedFieldsPassThrough(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock(2026)))

	bp := profile.BusinessProfile{
		BusinessName:        "Sharma Electronics",
		BusinessDescription: "Gadgets for every home",
		ServicesOffered:     "Sales and repairs",
		TargetAudience:      "Tech enthusiasts",
		EstablishedYear:     "2012",
		Email:               "shop@sharma.example",
		Phone:               "080-1234",
		WhatsApp:            "+91 90000 00000",
		Address:             "5 MG Road",
		Website:             "https://sharma.example",
		ColorTheme:          "orange",
	}

	site := builder.Build(bp, profile.ProductCatalog{}, "Electronics")

	if site.Name != "Sharma Electronics" || site.Title != "Sharma Electronics" {
		t.Fatalf("name/title: got %q / %q", site.Name, site.Title)
	}
	if site.AboutTitle != "About Sharma Electronics" {
		t.Fatalf("about title: got %q", site.AboutTitle)
	}
	if site.IndustryIcon != "📱" {
		t.Fatalf("industry icon: got %q", site.IndustryIcon)
	}
	if site.ThemeID != "orange" {
		t.Fatalf("theme id: got %q", site.ThemeID)
	}
	if !site.Contact.EmailProvided || !site.Contact.PhoneProvided {
		t.Fatalf("contact provided flags: %+v", site.Contact)
	}
	if site.Contact.WhatsApp != "+91 90000 00000" {
		t.Fatalf("whatsapp: got %q", site.Contact.WhatsApp)
	}
	if site.About.Established != "2012" {
		t.Fatalf("established: got %q", site.About.Established)
	}
	if site.Footer.Year != "2012" {
		t.Fatalf("footer year should reuse the established year, got %q", site.Footer.Year)
	}
	if site.Footer.Website != "https://sharma.example" {
		t.Fatalf("footer website: got %q", site.Footer.Website)
	}
}

func TestBuild_YearRule(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock(2026)))

	cases := []struct {
		name        string
		established string
		wantYear    string
	}{
		{"numeric established year wins", "1995", "1995"},
		{"missing year falls back to clock", "", "2026"},
		{"non-numeric year falls back to clock", "a while ago", "2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			site := builder.Build(profile.BusinessProfile{EstablishedYear: tc.established}, profile.ProductCatalog{}, "")
			if site.Footer.Year != tc.wantYear {
				t.Fatalf("footer year: want %s, got %s", tc.wantYear, site.Footer.Year)
			}
		})
	}
}

func TestBuild_ProductsKeepOrderAndDropNameless(t *testing.T) {
	builder := NewBuilder()

	catalog := profile.ProductCatalog{
		Products: []profile.Product{
			{ProductName: "Zeta", ProductPrice: 1000},
			{ProductName: "", ProductPrice: 50},
			{ProductName: "Alpha", ProductPrice: 999.5},
			{ProductName: "Mu"},
		},
	}

	site := builder.Build(profile.BusinessProfile{}, catalog, "")

	want := []ProductView{
		{Name: "Zeta", Price: "₹1,000.00"},
		{Name: "Alpha", Price: "₹999.50"},
		{Name: "Mu", Price: "₹0.00"},
	}
	if diff := cmp.Diff(want, site.Products); diff != "" {
		t.Fatalf("products (-want +got):\n%s", diff)
	}
}

func TestBuild_ServiceListNormalisation(t *testing.T) {
	builder := NewBuilder()

	catalog := profile.ProductCatalog{
		PaymentMethods:  []string{"cash", "  upi ", ""},
		DeliveryOptions: []string{"home delivery", "pickup"},
		Categories:      " Tools, Gadgets ",
		DeliveryAreas:   "Citywide",
	}

	site := builder.Build(profile.BusinessProfile{}, catalog, "")

	want := Services{
		PaymentMethods:  []string{"CASH", "UPI"},
		DeliveryOptions: []string{"Home delivery", "Pickup"},
		Categories:      "Tools, Gadgets",
		DeliveryAreas:   "Citywide",
	}
	if diff := cmp.Diff(want, site.Services); diff != "" {
		t.Fatalf("services (-want +got):\n%s", diff)
	}
	if site.Services.Empty() {
		t.Fatal("services should not report empty")
	}
}

func TestBuild_ServicesEmpty(t *testing.T) {
	site := NewBuilder().Build(profile.BusinessProfile{}, profile.ProductCatalog{}, "")
	if !site.Services.Empty() {
		t.Fatalf("empty catalog should yield empty services, got %+v", site.Services)
	}
}

func TestBuild_SanitisesMarkup(t *testing.T) {
	builder := NewBuilder()

	bp := profile.BusinessProfile{
		BusinessName:        `<script>alert("x")</script>Acme`,
		BusinessDescription: "Fine <b>goods</b> & more",
	}
	catalog := profile.ProductCatalog{
		Products: []profile.Product{
			{ProductName: "Widget", ProductImage: "javascript:alert(1)"},
			{ProductName: "Gadget", ProductImage: "https://cdn.example/g.png"},
		},
	}

	site := builder.Build(bp, catalog, "")

	if site.Title != "Acme" {
		t.Fatalf("script tag should be stripped from the name, got %q", site.Title)
	}
	if site.Tagline != "Fine goods & more" {
		t.Fatalf("tagline should keep text and entities unescaped, got %q", site.Tagline)
	}
	if site.Products[0].Image != "" {
		t.Fatalf("javascript image URL should be dropped, got %q", site.Products[0].Image)
	}
	if site.Products[1].Image != "https://cdn.example/g.png" {
		t.Fatalf("https image URL should survive, got %q", site.Products[1].Image)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	builder := NewBuilder(WithClock(fixedClock(2026)))

	bp := profile.BusinessProfile{BusinessName: "Acme", ColorTheme: "green"}
	catalog := profile.ProductCatalog{
		Products:       []profile.Product{{ProductName: "Widget", ProductPrice: 499}},
		PaymentMethods: []string{"cash"},
	}

	first := builder.Build(bp, catalog, "Electronics")
	second := builder.Build(bp, catalog, "Electronics")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat builds differ (-first +second):\n%s", diff)
	}
}
