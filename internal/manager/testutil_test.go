package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/internal/registry"
	"bodyfatd/pkg/types"
)

// writeArtifact writes a linear artifact whose output is the constant bf.
func writeArtifact(t *testing.T, dir string, v bodyfat.Variant, bf float64) string {
	t.Helper()
	schema := v.Schema()
	coef := make([]string, len(schema))
	for i := range coef {
		coef[i] = "0"
	}
	body := fmt.Sprintf(`{"variant":%q,"features":["%s"],"intercept":%v,"coefficients":[%s]}`,
		v, strings.Join(schema, `","`), bf, strings.Join(coef, ","))
	p := filepath.Join(dir, v.ArtifactName()+".json")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return p
}

// newTestManager registers the given variants, each predicting bf.
func newTestManager(t *testing.T, bf float64, variants ...bodyfat.Variant) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	for _, v := range variants {
		writeArtifact(t, dir, v, bf)
	}
	reg, err := registry.LoadDir(dir)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	fixed := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	m := NewWithConfig(ManagerConfig{
		Registry:       reg,
		ExportLocation: time.UTC,
		Now:            func() time.Time { return fixed },
		MaxWait:        50 * time.Millisecond,
	})
	return m, dir
}

func f64(v float64) *float64 { return &v }

func fullRequest() types.PredictRequest {
	return types.PredictRequest{
		Sex: "M", Age: 40, WeightKg: 80, HeightCm: 180, AbdomenCm: 100,
		NeckCm: f64(38), HipCm: f64(99), WristCm: f64(18),
	}
}
