package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bodyfatd/internal/config"
)

// Defaults applied when neither flags, environment nor config file set a value.
const (
	defaultAddr      = ":8080"
	defaultModelsDir = "models"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	envFiles   []string

	addr          string
	modelsDir     string
	preload       bool
	logLevel      string
	logFormat     string
	maxBodyBytes  int64
	maxQueueDepth int
	maxWaitMS     int
	corsEnabled   bool
	corsOrigins   string
	exportTZ      string
}

func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "Config file (.yaml, .yml, .json, .toml)")
	f.StringSliceVar(&o.envFiles, "env-file", nil, "Dotenv files to load (default .env if present)")
	f.StringVar(&o.addr, "addr", defaultAddr, "HTTP listen address, e.g. :8080")
	f.StringVar(&o.modelsDir, "models-dir", defaultModelsDir, "Directory holding bf_<variant>.{json,yaml,toml} artifacts")
	f.BoolVar(&o.preload, "preload", true, "Load every artifact at startup")
	f.StringVar(&o.logLevel, "log-level", defaultLogLevel, "Log level: debug|info|warn|error")
	f.StringVar(&o.logFormat, "log-format", defaultLogFormat, "Log format: console|json")
	f.Int64Var(&o.maxBodyBytes, "max-body-bytes", 0, "Maximum request body size (0 = default)")
	f.IntVar(&o.maxQueueDepth, "max-queue-depth", 0, "Evaluations allowed to wait for the slot (0 = default)")
	f.IntVar(&o.maxWaitMS, "max-wait-ms", 0, "Maximum wait for the evaluation slot in ms (0 = default)")
	f.BoolVar(&o.corsEnabled, "cors", false, "Enable CORS")
	f.StringVar(&o.corsOrigins, "cors-origins", "", "Comma-separated allowed origins")
	f.StringVar(&o.exportTZ, "export-tz", "", "IANA time zone for export timestamps (default local)")
}

// resolve layers the configuration: defaults < config file < environment < explicit flags.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(o.envFiles...); err != nil {
		return config.Config{}, fmt.Errorf("load env file: %w", err)
	}
	preload := true
	cfg := config.Config{
		Addr:      defaultAddr,
		ModelsDir: defaultModelsDir,
		Preload:   &preload,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		merge(&cfg, fileCfg)
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.Config{}, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = o.addr
	}
	if flags.Changed("models-dir") {
		cfg.ModelsDir = o.modelsDir
	}
	if flags.Changed("preload") {
		p := o.preload
		cfg.Preload = &p
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("max-body-bytes") {
		cfg.MaxBodyBytes = o.maxBodyBytes
	}
	if flags.Changed("max-queue-depth") {
		cfg.MaxQueueDepth = o.maxQueueDepth
	}
	if flags.Changed("max-wait-ms") {
		cfg.MaxWaitMS = o.maxWaitMS
	}
	if flags.Changed("cors") {
		cfg.CORSEnabled = o.corsEnabled
	}
	if flags.Changed("cors-origins") {
		cfg.CORSOrigins = splitCSV(o.corsOrigins)
	}
	if flags.Changed("export-tz") {
		cfg.ExportTimezone = o.exportTZ
	}
	cfg.CORSOrigins = splitCSV(strings.Join(cfg.CORSOrigins, ","))
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// merge copies the non-zero fields of src over dst.
func merge(dst *config.Config, src config.Config) {
	if src.Addr != "" {
		dst.Addr = src.Addr
	}
	if src.ModelsDir != "" {
		dst.ModelsDir = src.ModelsDir
	}
	if src.Preload != nil {
		dst.Preload = src.Preload
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
	}
	if src.MaxBodyBytes != 0 {
		dst.MaxBodyBytes = src.MaxBodyBytes
	}
	if src.MaxQueueDepth != 0 {
		dst.MaxQueueDepth = src.MaxQueueDepth
	}
	if src.MaxWaitMS != 0 {
		dst.MaxWaitMS = src.MaxWaitMS
	}
	if src.CORSEnabled {
		dst.CORSEnabled = true
	}
	if len(src.CORSOrigins) > 0 {
		dst.CORSOrigins = src.CORSOrigins
	}
	if src.ExportTimezone != "" {
		dst.ExportTimezone = src.ExportTimezone
	}
}

// exportLocation resolves the configured time zone; empty means local time.
func exportLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("export time zone: %w", err)
	}
	return loc, nil
}

// splitCSV splits a comma-separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
