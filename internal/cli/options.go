package cli

import (
	"runtime"

	"linguaspark/internal/config"
)

// Defaults applied when neither a flag nor the config file sets a value.
const (
	defaultAddr      = ":8080"
	defaultModelsDir = "~/.local/share/linguaspark/models"
)

// Options is the resolved runtime configuration shared by all subcommands.
type Options struct {
	ConfigPath string
	config.Config
}

func defaultOptions() *Options {
	return &Options{Config: config.Config{
		Addr:            envStr("LINGUASPARK_ADDR", defaultAddr),
		ModelsDir:       envStr("LINGUASPARK_MODELS_DIR", defaultModelsDir),
		Workers:         envUint("LINGUASPARK_WORKERS", uint(runtime.NumCPU())),
		LogLevel:        envStr("LINGUASPARK_LOG_LEVEL", "info"),
		CachePath:       envStr("LINGUASPARK_CACHE", ""),
		DetectLanguages: envBool("LINGUASPARK_DETECT", false),
	}}
}

// mergeFile copies every non-zero field of f over o.
func (o *Options) mergeFile(f config.Config) {
	if f.Addr != "" {
		o.Addr = f.Addr
	}
	if f.ModelsDir != "" {
		o.ModelsDir = f.ModelsDir
	}
	if f.Workers != 0 {
		o.Workers = f.Workers
	}
	if f.EagerLoad {
		o.EagerLoad = true
	}
	if f.CachePath != "" {
		o.CachePath = f.CachePath
	}
	if f.DetectLanguages {
		o.DetectLanguages = true
	}
	if f.LogLevel != "" {
		o.LogLevel = f.LogLevel
	}
	if f.MaxBodyBytes != 0 {
		o.MaxBodyBytes = f.MaxBodyBytes
	}
	if f.TranslateTimeoutSec != 0 {
		o.TranslateTimeoutSec = f.TranslateTimeoutSec
	}
	if f.CORSEnabled {
		o.CORSEnabled = true
	}
	if len(f.CORSOrigins) > 0 {
		o.CORSOrigins = append([]string(nil), f.CORSOrigins...)
	}
}
