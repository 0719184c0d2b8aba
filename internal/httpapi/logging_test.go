package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{"": LevelOff, "off": LevelOff, "ERROR": LevelError, "info": LevelInfo, "debug": LevelDebug, "1": LevelDebug, "chatty": LevelInfo}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestRequestLogLevelOverrides(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/predict?log=1", nil)
	if requestLogLevel(r) != LevelDebug {
		t.Fatalf("?log=1 should enable debug")
	}
	r = httptest.NewRequest(http.MethodGet, "/predict", nil)
	r.Header.Set("X-Log-Level", "error")
	if requestLogLevel(r) != LevelError {
		t.Fatalf("header override ignored")
	}
}

func TestPredictLogsWithZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/predict?log=info", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	NewMux(&mockService{}).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"message":"predict end"`) || !strings.Contains(out, `"variant":"male_full"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, `"request_id"`) {
		t.Fatalf("request id missing from log: %s", out)
	}
}

func TestPredictLog_ErrorLevelSkipsSuccess(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	postJSON(t, NewMux(&mockService{}), "/predict?log=error", validBody)
	if buf.Len() != 0 {
		t.Fatalf("success logged at error level: %s", buf.String())
	}
	postJSON(t, NewMux(&mockService{evalErr: errors.New("boom")}), "/predict?log=error", validBody)
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), `"status":500`) {
		t.Fatalf("expected error log, got: %s", buf.String())
	}
}
