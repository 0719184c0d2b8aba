package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, f := range names {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0o644); err != nil {
			t.Fatalf("write temp file: %v", err)
		}
	}
}

func TestScanner_ScanFiltersArtifacts(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"bf_male_full.json",
		"BF_FEMALE_LIGHT.YAML", // case-insensitive
		"bf_male_light.pkl",    // unsupported encoding
		"bf_male_medium.json",  // unknown variant
		"notes.txt",
	)
	models, err := NewScanner().Scan(dir)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %+v", models)
	}
	got := map[string]string{}
	for _, m := range models {
		got[m.ID] = m.Format
		if m.Name != "bf_"+m.ID {
			t.Fatalf("name %q does not match id %q", m.Name, m.ID)
		}
		if !filepath.IsAbs(m.Path) {
			t.Fatalf("path not absolute: %s", m.Path)
		}
	}
	if got["male_full"] != "json" || got["female_light"] != "yaml" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestScanner_FirstFileWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "bf_male_full.toml", "bf_male_full.json")
	models, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(models) != 1 || models[0].Format != "json" {
		t.Fatalf("unexpected: %+v", models)
	}
}

func TestScanner_ExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir on this platform: %v", err)
	}
	hTmp, err := os.MkdirTemp(home, "bodyfatd-registry-*")
	if err != nil {
		t.Skipf("cannot create temp under home: %v", err)
	}
	defer os.RemoveAll(hTmp)
	touch(t, hTmp, "bf_female_full.json")
	var tildePath string
	if runtime.GOOS == "windows" {
		tildePath = filepath.Join("~", filepath.Base(hTmp))
	} else {
		tildePath = "~/" + filepath.Base(hTmp)
	}
	models, err := NewScanner().Scan(tildePath)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(models) != 1 || models[0].ID != "female_full" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestVariantFromFilename(t *testing.T) {
	if v, ok := VariantFromFilename("bf_male_light.yml"); !ok || v != "male_light" {
		t.Fatalf("got %q %v", v, ok)
	}
	if _, ok := VariantFromFilename("male_light.yml"); ok {
		t.Fatalf("expected missing prefix to be rejected")
	}
}
