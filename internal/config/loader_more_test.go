package config

import (
	"strings"
	"testing"
)

func TestLoad_ParseErrorsNameTheFile(t *testing.T) {
	cases := map[string]string{
		"bad.yaml": "addr: :8080\n: broken\n",
		"bad.json": `{ "addr": ":8080", "models_dir": }`,
		"bad.toml": "addr=:8080\nmodels_dir\n",
	}
	for name, body := range cases {
		p := writeTempFile(t, t.TempDir(), name, body)
		_, err := Load(p)
		if err == nil || !strings.Contains(err.Error(), "parse "+name) {
			t.Fatalf("%s: err=%v", name, err)
		}
	}
	if _, err := Load("/definitely/not/a/real/bodyfatd.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero value", Config{}, ""},
		{"json logs", Config{LogFormat: "JSON", ExportTimezone: "Europe/Rome"}, ""},
		{"unknown log format", Config{LogFormat: "xml"}, "log_format"},
		{"negative body", Config{MaxBodyBytes: -1}, "max_body_bytes"},
		{"negative queue", Config{MaxQueueDepth: -3}, "max_queue_depth"},
		{"negative wait", Config{MaxWaitMS: -1}, "max_wait_ms"},
		{"bad zone", Config{ExportTimezone: "Mars/Olympus"}, "export_timezone"},
	}
	for _, c := range cases {
		err := c.cfg.Validate()
		if c.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected %v", c.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), c.wantErr) {
			t.Fatalf("%s: err=%v want %q", c.name, err, c.wantErr)
		}
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "cfg.yaml", "max_queue_depth: -1\n")
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "cfg.yaml") {
		t.Fatalf("err=%v", err)
	}
}
