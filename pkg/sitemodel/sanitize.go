package sitemodel

import (
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// cleanText strips any markup a user smuggled into a free-text field and
// returns plain text. Entity escaping is undone afterwards because the
// renderers escape on output; leaving bluemonday's entities in place would
// double-escape.
func cleanText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}

// imageURL accepts only absolute http(s) or data URLs. Anything else is
// treated as absent so the rendered card simply omits its image.
func imageURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	switch parsed.Scheme {
	case "http", "https", "data":
		return trimmed
	default:
		return ""
	}
}
