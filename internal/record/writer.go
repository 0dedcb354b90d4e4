package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/websiteboss/sitegen/pkg/profile"
)

// Save persists the wizard's collected state into the session directory so a
// later render can pick it up. Unlike Load, writing does surface errors: the
// wizard wants the user to know their session was not stored.
func Save(dir string, bp profile.BusinessProfile, catalog profile.ProductCatalog, industry string) error {
	if dir == "" {
		return fmt.Errorf("record: session directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("record: create session directory: %w", err)
	}

	if err := writeJSON(dir, BusinessFile, bp); err != nil {
		return err
	}
	if err := writeJSON(dir, ProductFile, catalog); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, IndustryFile), []byte(industry), 0o644); err != nil {
		return fmt.Errorf("record: write %s: %w", IndustryFile, err)
	}
	return nil
}

func writeJSON(dir, name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("record: encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("record: write %s: %w", name, err)
	}
	return nil
}
