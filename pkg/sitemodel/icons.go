package sitemodel

import "strings"

// GenericIndustryIcon is the storefront glyph used for unrecognised
// industries.
const GenericIndustryIcon = "🏪"

var industryIcons = map[string]string{
	"pharmacy":    "💊",
	"cosmetics":   "💄",
	"restaurant":  "🍽️",
	"electronics": "📱",
	"clothing":    "👗",
	"grocery":     "🛒",
}

// IndustryIcon maps an industry tag onto its display glyph. The set is
// closed; everything else gets the generic storefront.
func IndustryIcon(industry string) string {
	if icon, ok := industryIcons[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return icon
	}
	return GenericIndustryIcon
}
