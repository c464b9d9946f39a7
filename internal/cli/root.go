package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"linguaspark/internal/config"
	"linguaspark/pkg/bergamot"
)

// app carries resolved options and the logger into every subcommand.
type app struct {
	opts *Options
	log  zerolog.Logger
}

// buildRootCmd builds the command tree with environment defaults.
func buildRootCmd() *cobra.Command { return buildRootCmdWith(defaultOptions()) }

// buildRootCmdWith constructs the Cobra command tree over opts.
// Precedence: flags, then the --config file, then environment defaults.
func buildRootCmdWith(opts *Options) *cobra.Command {
	a := &app{opts: opts, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "linguaspark",
		Short:         "Local neural machine translation server and CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (.yaml, .yml, .json or .toml)")
	pf.String("log-level", opts.LogLevel, "Log level: debug|info|warn|error (defaults LINGUASPARK_LOG_LEVEL or info)")
	pf.String("models-dir", opts.ModelsDir, "Directory holding one subdirectory per language pair")
	pf.Uint("workers", opts.Workers, "Native translation worker threads")
	pf.String("cache", opts.CachePath, "SQLite translation cache path (empty disables the cache)")
	pf.Bool("detect", opts.DetectLanguages, "Detect the source language when a request omits it")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.resolve(cmd)
	}

	root.AddCommand(
		newServeCmd(a),
		newTranslateCmd(a),
		newModelsCmd(a),
		newConfigCmd(a),
		newCacheCmd(a),
	)
	return root
}

// resolve merges the config file and explicitly set flags into a.opts and
// installs the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	fs := cmd.Flags()
	if path, _ := fs.GetString("config"); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		a.opts.ConfigPath = path
		a.opts.mergeFile(f)
	}
	if fs.Changed("log-level") {
		a.opts.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("models-dir") {
		a.opts.ModelsDir, _ = fs.GetString("models-dir")
	}
	if fs.Changed("workers") {
		a.opts.Workers, _ = fs.GetUint("workers")
	}
	if fs.Changed("cache") {
		a.opts.CachePath, _ = fs.GetString("cache")
	}
	if fs.Changed("detect") {
		a.opts.DetectLanguages, _ = fs.GetBool("detect")
	}
	// serve-only flags; Changed is false where the flag is not defined
	if fs.Changed("addr") {
		a.opts.Addr, _ = fs.GetString("addr")
	}
	if fs.Changed("eager") {
		a.opts.EagerLoad, _ = fs.GetBool("eager")
	}
	if fs.Changed("cors-origins") {
		v, _ := fs.GetString("cors-origins")
		a.opts.CORSOrigins = splitCSV(v)
		a.opts.CORSEnabled = len(a.opts.CORSOrigins) > 0
	}
	if fs.Changed("max-body-bytes") {
		a.opts.MaxBodyBytes, _ = fs.GetInt64("max-body-bytes")
	}
	if fs.Changed("translate-timeout") {
		a.opts.TranslateTimeoutSec, _ = fs.GetInt64("translate-timeout")
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.opts.LogLevel)
	if a.opts.Workers == 0 {
		a.log.Warn().Msg("workers must be at least 1, using 1")
		a.opts.Workers = 1
	}
	bergamot.SetLogger(a.component("bergamot"))
	a.log.Debug().Str("config", a.opts.ConfigPath).Str("models_dir", a.opts.ModelsDir).Uint("workers", a.opts.Workers).Msg("options resolved")
	return nil
}

func (a *app) component(name string) zerolog.Logger {
	return a.log.With().Str("component", name).Logger()
}
