// Package store persists generated banners to the output directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// SavePNG writes encoded PNG bytes under the output dir with a unique,
// festival-prefixed name and returns the filename.
func (s *Store) SavePNG(data []byte, festival string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create output dir: %w", err)
	}
	prefix := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(festival), " ", "_"))
	if prefix == "" {
		prefix = "banner"
	}
	name := fmt.Sprintf("%s_%s.png", prefix, uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store: write banner: %w", err)
	}
	return name, nil
}
