package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/internal/common/fsutil"
	"bodyfatd/internal/regression"
	"bodyfatd/pkg/types"
)

// Scanner discovers model artifacts named bf_<variant>.<ext> in a directory.
type Scanner struct {
	// Extensions accepted by the scanner; defaults to regression.Extensions.
	Extensions []string
}

// NewScanner returns a scanner for every encoding the regression package decodes.
func NewScanner() *Scanner {
	return &Scanner{Extensions: append([]string(nil), regression.Extensions...)}
}

// Scan lists the artifacts in dir. ID is the variant, Name the store key and
// Path the absolute file path. Files that do not name a known variant are
// skipped. If several files map to one variant the lexically first wins.
func (s *Scanner) Scan(dir string) ([]types.Model, error) {
	abs, err := fsutil.ResolveDir(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	seen := make(map[bodyfat.Variant]bool)
	var models []types.Model
	for _, name := range names {
		ext := filepath.Ext(name)
		if !s.accepts(ext) {
			continue
		}
		v, ok := VariantFromFilename(name)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		models = append(models, types.Model{
			ID:     string(v),
			Name:   v.ArtifactName(),
			Path:   filepath.Join(abs, name),
			Format: strings.TrimPrefix(strings.ToLower(ext), "."),
		})
	}
	return models, nil
}

func (s *Scanner) accepts(ext string) bool {
	exts := s.Extensions
	if len(exts) == 0 {
		exts = regression.Extensions
	}
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// VariantFromFilename maps bf_male_full.json (any case) to male_full.
func VariantFromFilename(name string) (bodyfat.Variant, bool) {
	stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	if !strings.HasPrefix(stem, "bf_") {
		return "", false
	}
	return bodyfat.ParseVariant(strings.TrimPrefix(stem, "bf_"))
}

// LoadDir scans dir with the default scanner.
func LoadDir(dir string) ([]types.Model, error) {
	return NewScanner().Scan(dir)
}
