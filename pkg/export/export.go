// Package export packages a rendered document for download: a sanitised
// filename derived from the business name plus a plain file write.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContentType is the MIME type advertised for the downloadable file.
const ContentType = "text/html"

// DefaultBaseName is used when the business name sanitises to nothing.
const DefaultBaseName = "website"

// Filename derives the download filename from a business name. Characters
// that are unsafe on common filesystems are replaced, runs of whitespace
// collapse to single hyphens, and an empty result falls back to
// "website.html".
func Filename(businessName string) string {
	base := sanitizeBaseName(businessName)
	if base == "" {
		base = DefaultBaseName
	}
	return base + ".html"
}

// Write stores the document under dir with the given name, creating the
// directory when needed.
func Write(dir, name string, data []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("export: filename is required")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune('-')
		}
		// Everything else (slashes, quotes, control characters, emoji) is
		// dropped outright.
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-.")
}
