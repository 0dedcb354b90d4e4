package preview

import (
	"fmt"

	"github.com/websiteboss/sitegen/pkg/sitemodel"
	"github.com/websiteboss/sitegen/pkg/theme"
)

// Node is one element of the live-preview view tree. Style carries the
// inline style object for the element; Attrs carries non-style attributes
// such as image sources. Children preserve document order.
type Node struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// BuildTree maps a site model onto the view tree the preview displays. The
// tree mirrors the exported document section for section; the only sanctioned
// divergence is the empty catalog, where the preview drops the products
// section while the document shows a placeholder.
func BuildTree(site sitemodel.Site, palette theme.Palette) Node {
	page := Node{
		Kind: "page",
		Style: map[string]string{
			"fontFamily": "'Inter', 'Segoe UI', system-ui, sans-serif",
			"background": "#FAFBFC",
		},
	}
	page.Children = append(page.Children, headerNode(site, palette), aboutNode(site, palette))
	if len(site.Products) > 0 {
		page.Children = append(page.Children, productsNode(site, palette))
	}
	if !site.Services.Empty() {
		page.Children = append(page.Children, servicesNode(site, palette))
	}
	page.Children = append(page.Children, footerNode(site, palette))
	return page
}

func headerNode(site sitemodel.Site, palette theme.Palette) Node {
	header := Node{
		Kind: "header",
		Style: map[string]string{
			"background": palette.HeroBackground,
			"color":      "white",
		},
		Children: []Node{
			{Kind: "icon", Text: site.IndustryIcon},
			{Kind: "heading", Text: site.Title},
			{Kind: "text", Text: site.Tagline},
		},
	}

	var chips []Node
	if site.Contact.EmailProvided {
		chips = append(chips, contactChip("📧", site.Contact.Email))
	}
	if site.Contact.PhoneProvided {
		chips = append(chips, contactChip("📞", site.Contact.Phone))
	}
	if site.Contact.WhatsApp != "" {
		chips = append(chips, contactChip("📱", site.Contact.WhatsApp))
	}
	if len(chips) > 0 {
		header.Children = append(header.Children, Node{Kind: "contact", Children: chips})
	}
	return header
}

func contactChip(glyph, value string) Node {
	return Node{
		Kind: "chip",
		Text: glyph + " " + value,
	}
}

func aboutNode(site sitemodel.Site, palette theme.Palette) Node {
	story := card("Our Story", site.About.Story, palette)
	if site.About.Established != "" {
		story.Children = append(story.Children, Node{
			Kind:  "text",
			Text:  "Established: " + site.About.Established,
			Style: map[string]string{"color": palette.Primary},
		})
	}

	return Node{
		Kind: "section",
		Attrs: map[string]string{
			"name": "about",
		},
		Children: []Node{
			sectionTitle(site.AboutTitle, palette),
			story,
			card("Our Services", site.About.Services, palette),
			card("Target Audience", site.About.TargetAudience, palette),
		},
	}
}

func productsNode(site sitemodel.Site, palette theme.Palette) Node {
	section := Node{
		Kind: "section",
		Attrs: map[string]string{
			"name": "products",
		},
		Children: []Node{sectionTitle("Our Products", palette)},
	}
	for _, product := range site.Products {
		section.Children = append(section.Children, productCard(product, palette))
	}
	return section
}

func productCard(product sitemodel.ProductView, palette theme.Palette) Node {
	card := Node{
		Kind: "card",
		Style: map[string]string{
			"background": "white",
		},
	}
	if product.Image != "" {
		card.Children = append(card.Children, Node{
			Kind: "image",
			Attrs: map[string]string{
				"src":         product.Image,
				"alt":         product.Name,
				"hideOnError": "true",
			},
		})
	}
	card.Children = append(card.Children,
		Node{Kind: "heading", Text: product.Name, Style: map[string]string{"color": palette.TextDark}},
		Node{Kind: "price", Text: product.Price, Style: map[string]string{"color": palette.Primary}},
	)
	if product.Description != "" {
		card.Children = append(card.Children, Node{Kind: "text", Text: product.Description, Style: map[string]string{"color": palette.TextLight}})
	}
	if product.Category != "" {
		card.Children = append(card.Children, Node{Kind: "text", Text: "Category: " + product.Category, Style: map[string]string{"color": palette.Primary}})
	}
	if product.SKU != "" {
		card.Children = append(card.Children, Node{Kind: "text", Text: "SKU: " + product.SKU, Style: map[string]string{"color": palette.TextLight}})
	}
	return card
}

func servicesNode(site sitemodel.Site, palette theme.Palette) Node {
	section := Node{
		Kind: "section",
		Attrs: map[string]string{
			"name": "services",
		},
		Children: []Node{sectionTitle("Our Services", palette)},
	}

	if methods := site.Services.PaymentMethods; len(methods) > 0 {
		section.Children = append(section.Children, badgeCard("💳", "Payment Methods", methods, palette))
	}
	if options := site.Services.DeliveryOptions; len(options) > 0 {
		section.Children = append(section.Children, badgeCard("🚚", "Delivery Options", options, palette))
	}
	if site.Services.Categories != "" {
		section.Children = append(section.Children, iconCard("📂", "Product Categories", site.Services.Categories, palette))
	}
	if site.Services.DeliveryAreas != "" {
		section.Children = append(section.Children, iconCard("🗺️", "Delivery Areas", site.Services.DeliveryAreas, palette))
	}
	return section
}

func footerNode(site sitemodel.Site, palette theme.Palette) Node {
	contact := Node{
		Kind: "column",
		Children: []Node{
			{Kind: "heading", Text: "Contact Information"},
			{Kind: "text", Text: "📧 " + site.Contact.Email},
			{Kind: "text", Text: "📞 " + site.Contact.Phone},
		},
	}
	if site.Contact.WhatsApp != "" {
		contact.Children = append(contact.Children, Node{Kind: "text", Text: "📱 " + site.Contact.WhatsApp})
	}

	location := Node{
		Kind: "column",
		Children: []Node{
			{Kind: "heading", Text: "Location"},
			{Kind: "text", Text: site.Footer.Address},
		},
	}
	if site.Footer.Website != "" {
		location.Children = append(location.Children, Node{Kind: "text", Text: "🌐 " + site.Footer.Website})
	}

	return Node{
		Kind: "footer",
		Style: map[string]string{
			"background": palette.HeroBackground,
			"color":      "white",
		},
		Children: []Node{
			{
				Kind: "column",
				Children: []Node{
					{Kind: "heading", Text: site.Title},
					{Kind: "text", Text: site.Footer.Blurb},
				},
			},
			contact,
			location,
			{Kind: "copyright", Text: copyrightLine(site)},
		},
	}
}

func copyrightLine(site sitemodel.Site) string {
	return fmt.Sprintf("© %s %s. All rights reserved. | Generated by WebsiteBoss.com", site.Footer.Year, site.Title)
}

func card(title, body string, palette theme.Palette) Node {
	return Node{
		Kind: "card",
		Style: map[string]string{
			"border": "1px solid " + palette.CardBorder,
		},
		Children: []Node{
			{Kind: "heading", Text: title, Style: map[string]string{"color": palette.Primary}},
			{Kind: "text", Text: body, Style: map[string]string{"color": palette.TextLight}},
		},
	}
}

func iconCard(glyph, title, body string, palette theme.Palette) Node {
	node := card(title, body, palette)
	node.Children = append([]Node{{Kind: "icon", Text: glyph}}, node.Children...)
	return node
}

func badgeCard(glyph, title string, entries []string, palette theme.Palette) Node {
	node := Node{
		Kind: "card",
		Style: map[string]string{
			"border": "1px solid " + palette.CardBorder,
		},
		Children: []Node{
			{Kind: "icon", Text: glyph},
			{Kind: "heading", Text: title, Style: map[string]string{"color": palette.Primary}},
		},
	}
	for _, entry := range entries {
		node.Children = append(node.Children, Node{Kind: "badge", Text: entry})
	}
	return node
}

func sectionTitle(text string, palette theme.Palette) Node {
	return Node{
		Kind: "heading",
		Text: text,
		Style: map[string]string{
			"color":     palette.TextDark,
			"underline": palette.Primary,
		},
	}
}
