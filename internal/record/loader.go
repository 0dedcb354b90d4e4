// Package record reads the wizard's stored records. The wizard persists each
// record as a small file in a session directory; the renderer loads them once
// per render and treats every failure as an empty record, never an error.
package record

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/websiteboss/sitegen/pkg/profile"
)

// File names the wizard writes inside its session directory.
const (
	BusinessFile = "businessData.json"
	ProductFile  = "productData.json"
	IndustryFile = "industry"
)

// Records bundles the three inputs of a render cycle.
type Records struct {
	Profile  profile.BusinessProfile
	Catalog  profile.ProductCatalog
	Industry string
}

// Load reads the session directory. Missing or corrupt files degrade to the
// zero value for their record; Load has no failure mode.
func Load(dir string) Records {
	return Records{
		Profile:  profile.DecodeBusinessProfile(readFile(dir, BusinessFile)),
		Catalog:  profile.DecodeProductCatalog(readFile(dir, ProductFile)),
		Industry: strings.TrimSpace(string(readFile(dir, IndustryFile))),
	}
}

func readFile(dir, name string) []byte {
	if dir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	return data
}
