package scene

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxSide is the largest accepted scene width or height.
const MaxSide = 1 << 14

// Parse reads and validates a scene file.
func Parse(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	s.Path = path

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if s.Background != "" && !filepath.IsAbs(s.Background) {
		s.Background = filepath.Join(filepath.Dir(path), s.Background)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the window size and that every op is known.
// Geometry is not checked here; out-of-range shapes fail when drawn.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	if s.Width > MaxSide || s.Height > MaxSide {
		return fmt.Errorf("size %dx%d exceeds %d per side", s.Width, s.Height, MaxSide)
	}
	for i, sh := range s.Shapes {
		switch sh.Op {
		case OpClear, OpBox, OpLine, OpRect, OpCircle, OpText:
		default:
			return fmt.Errorf("shape %d: unknown op %q", i, sh.Op)
		}
	}
	return nil
}

// Discover returns the .json scene files under dir, sorted by path.
func Discover(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".json" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
