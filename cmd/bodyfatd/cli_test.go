package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"bodyfatd/pkg/types"
)

const maleFullArtifact = `{"variant":"male_full","features":["Age","Weight","Height","Abdomen","Neck","Hip","Wrist"],"intercept":20,"coefficients":[0,0,0,0,0,0,0]}`

const maleLightArtifact = "variant: male_light\nfeatures: [Age, Weight, Height, Abdomen]\nintercept: -10\ncoefficients: [0, 0, 0, 0.3]\n"

func modelsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"bf_male_full.json": maleFullArtifact,
		"bf_male_light.yaml": maleLightArtifact,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPredictCmd_Full(t *testing.T) {
	dir := modelsDir(t)
	out, err := run(t, "predict", "--models-dir", dir, "--log-level", "error",
		"--sex", "M", "--age", "40", "--weight", "80", "--height", "180", "--abdomen", "100",
		"--neck", "38", "--hip", "99", "--wrist", "18", "--export", "--export-tz", "UTC")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	for _, want := range []string{
		"Estimated Body Fat: 20.0%",
		"Model used: BF_MALE_FULL",
		"BMI: 24.69",
		"Lean mass: 64.00 kg",
		"FFMI: 19.75",
		"Assessment: within healthy range",
		"Date,Time,Weight,BMI,Fat%",
		",80.00,24.69,20.00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPredictCmd_ZeroOptionalUsesLight(t *testing.T) {
	dir := modelsDir(t)
	out, err := run(t, "predict", "--models-dir", dir, "--log-level", "error", "--json",
		"--neck", "38", "--hip", "0", "--wrist", "18")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	var resp types.PredictResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if resp.Variant != "male_light" {
		t.Fatalf("variant=%s", resp.Variant)
	}
	if resp.BodyFatPercent < 19.99 || resp.BodyFatPercent > 20.01 {
		t.Fatalf("body fat=%v", resp.BodyFatPercent)
	}
}

func TestPredictCmd_Errors(t *testing.T) {
	dir := modelsDir(t)
	if _, err := run(t, "predict", "--models-dir", dir, "--age", "10"); err == nil || !strings.Contains(err.Error(), "age") {
		t.Fatalf("expected age validation error, got %v", err)
	}
	if _, err := run(t, "predict", "--models-dir", dir, "--sex", "F"); err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("expected model not found, got %v", err)
	}
	if _, err := run(t, "predict", "--models-dir", filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing models dir")
	}
}

func TestModelsCmd(t *testing.T) {
	dir := modelsDir(t)
	out, err := run(t, "models", "--models-dir", dir)
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if !strings.Contains(out, "male_full") || !strings.Contains(out, "(missing)") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	out, err = run(t, "models", "--models-dir", dir, "--json")
	if err != nil {
		t.Fatalf("models --json: %v", err)
	}
	var resp types.ModelsResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Models) != 2 {
		t.Fatalf("models=%+v", resp.Models)
	}
}

func TestResolve_Layering(t *testing.T) {
	d := t.TempDir()
	cfgPath := filepath.Join(d, "bodyfatd.yaml")
	if err := os.WriteFile(cfgPath, []byte("addr: :7000\nmodels_dir: /from/file\nmax_queue_depth: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BODYFATD_MODELS_DIR", "/from/env")

	opts := &options{}
	cmd := &cobra.Command{Use: "test"}
	opts.bind(cmd)
	if err := cmd.ParseFlags([]string{"--config", cfgPath, "--max-queue-depth", "9"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := opts.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("file value lost: addr=%q", cfg.Addr)
	}
	if cfg.ModelsDir != "/from/env" {
		t.Fatalf("env should override file: %q", cfg.ModelsDir)
	}
	if cfg.MaxQueueDepth != 9 {
		t.Fatalf("flag should override file: %d", cfg.MaxQueueDepth)
	}
	if cfg.Preload == nil || !*cfg.Preload {
		t.Fatalf("preload should default to true")
	}
}

func TestExportLocation(t *testing.T) {
	if _, err := exportLocation("Not/AZone"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
	loc, err := exportLocation("")
	if err != nil || loc == nil {
		t.Fatalf("empty zone should be local: %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil || strings.TrimSpace(out) != version {
		t.Fatalf("version output %q err=%v", out, err)
	}
}

func TestPredictCmd_MalformedEnvironment(t *testing.T) {
	dir := modelsDir(t)
	t.Setenv("BODYFATD_MAX_WAIT_MS", "5s")
	_, err := run(t, "predict", "--models-dir", dir)
	if err == nil || !strings.Contains(err.Error(), "BODYFATD_MAX_WAIT_MS") {
		t.Fatalf("expected malformed env error, got %v", err)
	}
}
