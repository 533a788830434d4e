package assets

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// Catalog enumerates the on-disk asset pools: product photos under
// <base>/products and per-festival decoration PNGs under
// <base>/festivals/<name>. Everything is best-effort; a missing folder just
// yields an empty list.
type Catalog struct {
	baseDir string
}

func NewCatalog(baseDir string) *Catalog {
	return &Catalog{baseDir: baseDir}
}

// ProductCandidates lists the product photo pool in sorted order.
func (c *Catalog) ProductCandidates() []string {
	matches, err := filepath.Glob(filepath.Join(c.baseDir, "products", "*.*"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// DecorationFiles lists decoration PNGs for a festival. The lowercase folder
// name is tried first, then the exact festival name for users who kept the
// original casing.
func (c *Catalog) DecorationFiles(festival string) []string {
	for _, name := range []string{strings.ToLower(festival), festival} {
		dir := filepath.Join(c.baseDir, "festivals", name)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches
	}
	return nil
}

// LoadImage opens an asset file as an image.
func LoadImage(path string) (image.Image, error) {
	return imaging.Open(path)
}

// DecodeImage decodes uploaded image bytes in any registered format.
func DecodeImage(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data))
}
