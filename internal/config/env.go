package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BODYFATD_"

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment without overriding variables already set.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays BODYFATD_* variables from lookup onto cfg. Well-formed
// values are applied; every malformed number or boolean is reported in the
// returned error and leaves its field unchanged.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs []error
	get := func(k string) (string, bool) {
		v, ok := lookup(EnvPrefix + k)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}
	setBool := func(k string, dst func(bool)) {
		if v, ok := get(k); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: want a boolean", EnvPrefix, k, v))
				return
			}
			dst(b)
		}
	}
	setInt := func(k string, dst func(int64)) {
		if v, ok := get(k); ok {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: want an integer", EnvPrefix, k, v))
				return
			}
			dst(n)
		}
	}

	if v, ok := get("ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := get("MODELS_DIR"); ok {
		cfg.ModelsDir = v
	}
	setBool("PRELOAD", func(b bool) { cfg.Preload = &b })
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	setInt("MAX_BODY_BYTES", func(n int64) { cfg.MaxBodyBytes = n })
	setInt("MAX_QUEUE_DEPTH", func(n int64) { cfg.MaxQueueDepth = int(n) })
	setInt("MAX_WAIT_MS", func(n int64) { cfg.MaxWaitMS = int(n) })
	setBool("CORS_ENABLED", func(b bool) { cfg.CORSEnabled = b })
	if v, ok := get("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v, ok := get("EXPORT_TIMEZONE"); ok {
		cfg.ExportTimezone = v
	}
	return errors.Join(errs...)
}
