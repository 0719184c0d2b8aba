package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bodyfatd/internal/httpapi"
	"bodyfatd/internal/manager"
	"bodyfatd/internal/registry"
)

// Artifacts in every encoding the registry accepts. Each predicts a fixed
// body fat so the derived metrics are easy to check.
var artifacts = map[string]string{
	"bf_male_full.json": `{"variant":"male_full","features":["Age","Weight","Height","Abdomen","Neck","Hip","Wrist"],"intercept":20,"coefficients":[0,0,0,0,0,0,0]}`,
	"bf_male_light.yaml": "variant: male_light\nfeatures: [Age, Weight, Height, Abdomen]\nintercept: -10\ncoefficients: [0, 0, 0, 0.3]\n",
	"bf_female_full.toml": "variant = \"female_full\"\nfeatures = [\"Age\", \"Weight\", \"Height\", \"Abdomen\", \"Neck\", \"Hip\", \"Wrist\"]\nintercept = 32.0\ncoefficients = [0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0]\n",
}

// createTempModelsDir writes the named artifacts (from artifacts, or extra
// when given) into a temporary directory.
func createTempModelsDir(t *testing.T, extra map[string]string, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		body, ok := extra[n]
		if !ok {
			body = artifacts[n]
		}
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write temp model %s: %v", p, err)
		}
	}
	return dir
}

// newServerForDir scans dir, optionally preloads, and serves the API.
func newServerForDir(t *testing.T, dir string, preload bool) (*httptest.Server, *manager.Manager) {
	t.Helper()
	reg, err := registry.LoadDir(dir)
	if err != nil {
		t.Fatalf("scan models: %v", err)
	}
	fixed := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Registry:       reg,
		ExportLocation: time.UTC,
		Now:            func() time.Time { return fixed },
	})
	if preload {
		_ = mgr.Preload()
	}
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewBufferString(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
