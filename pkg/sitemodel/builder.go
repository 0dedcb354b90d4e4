package sitemodel

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/websiteboss/sitegen/pkg/profile"
)

// Option customises the builder.
type Option func(*Builder)

// WithClock injects the clock used for the copyright-year fallback. Tests
// pin it; production code keeps the default time.Now.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// Builder turns the wizard's records into a Site. Build is pure: it never
// mutates its inputs and identical inputs yield identical models.
type Builder struct {
	clock func() time.Time
}

// NewBuilder constructs a builder applying any provided options.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{clock: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build applies the substitution table, icon selection, price formatting,
// list normalisation, and conditional-section rules in one place so every
// renderer downstream agrees on content.
func (b *Builder) Build(bp profile.BusinessProfile, catalog profile.ProductCatalog, industry string) Site {
	name := cleanText(bp.BusinessName)
	description := cleanText(bp.BusinessDescription)
	email := cleanText(bp.Email)
	phone := cleanText(bp.Phone)

	site := Site{
		Name:         name,
		Title:        fallback(name, DefaultBusinessName),
		AboutTitle:   "About " + fallback(name, DefaultAboutName),
		Industry:     strings.TrimSpace(industry),
		IndustryIcon: IndustryIcon(industry),
		Tagline:      fallback(description, DefaultTagline),
		ThemeID:      strings.TrimSpace(bp.ColorTheme),
		Contact: Contact{
			Email:         fallback(email, DefaultEmail),
			Phone:         fallback(phone, DefaultPhone),
			WhatsApp:      cleanText(bp.WhatsApp),
			EmailProvided: email != "",
			PhoneProvided: phone != "",
		},
		About: About{
			Story:          fallback(description, DefaultStory),
			Established:    cleanText(bp.EstablishedYear),
			Services:       fallback(cleanText(bp.ServicesOffered), DefaultServices),
			TargetAudience: fallback(cleanText(bp.TargetAudience), DefaultAudience),
		},
		Products: buildProducts(catalog.Products),
		Services: Services{
			PaymentMethods:  normaliseList(catalog.PaymentMethods, strings.ToUpper),
			DeliveryOptions: normaliseList(catalog.DeliveryOptions, titleCase),
			Categories:      cleanText(catalog.Categories),
			DeliveryAreas:   cleanText(catalog.DeliveryAreas),
		},
		Footer: Footer{
			Blurb:   fallback(description, DefaultFooterBlurb),
			Address: fallback(cleanText(bp.Address), DefaultAddress),
			Website: cleanText(bp.Website),
		},
	}
	site.Footer.Year = b.copyrightYear(site.About.Established)
	return site
}

// copyrightYear applies the single year rule: the established year when the
// profile has a usable one, otherwise the clock's current year.
func (b *Builder) copyrightYear(established string) string {
	if established != "" {
		if _, err := strconv.Atoi(established); err == nil {
			return established
		}
	}
	return strconv.Itoa(b.clock().Year())
}

func buildProducts(products []profile.Product) []ProductView {
	if len(products) == 0 {
		return nil
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		name := cleanText(p.ProductName)
		if name == "" {
			// A product without a name has nothing meaningful to display.
			continue
		}
		views = append(views, ProductView{
			Name:        name,
			Price:       FormatPrice(p.ProductPrice),
			Description: cleanText(p.ProductDescription),
			Image:       imageURL(p.ProductImage),
			Category:    cleanText(p.ProductCategory),
			SKU:         cleanText(p.ProductSKU),
		})
	}
	if len(views) == 0 {
		return nil
	}
	return views
}

func normaliseList(entries []string, transform func(string) string) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		cleaned := cleanText(entry)
		if cleaned == "" {
			continue
		}
		out = append(out, transform(cleaned))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func titleCase(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
