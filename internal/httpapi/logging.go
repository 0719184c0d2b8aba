package httpapi

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is the HTTP layer logger; it discards output until SetLogger is called.
var zlog = zerolog.Nop()

// SetLogger installs the structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = l }

// LogLevel is the per-request verbosity of prediction logging.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug", "1":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// defaultLogLevel applies to requests without an override.
var defaultLogLevel = parseLevel(os.Getenv("BODYFATD_LOG_REQUESTS"))

// SetDefaultLogLevel overrides the request log level used when a request
// carries no ?log= or X-Log-Level override.
func SetDefaultLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	if v := r.URL.Query().Get("log"); v != "" {
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// requestLogger is zlog with the request path and id attached.
func requestLogger(r *http.Request) zerolog.Logger {
	c := zlog.With().Str("path", r.URL.Path)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		c = c.Str("request_id", rid)
	}
	return c.Logger()
}

// logPredictEnd records the outcome of a prediction request. At LevelError
// only failures are logged; server-side failures log at error level.
func logPredictEnd(r *http.Request, lvl LogLevel, status int, start time.Time, variant string, err error) {
	switch {
	case lvl == LevelOff:
		return
	case lvl == LevelError && err == nil:
		return
	}
	level := zerolog.InfoLevel
	if err != nil && status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	l := requestLogger(r)
	e := l.WithLevel(level).Int("status", status).Dur("dur", time.Since(start))
	if variant != "" {
		e = e.Str("variant", variant)
	}
	if err != nil {
		e = e.Err(err)
	}
	e.Msg("predict end")
}
