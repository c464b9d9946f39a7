package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"linguaspark/internal/httpapi"
	"linguaspark/internal/manager"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP translation server",
		Example: "  linguaspark serve --models-dir ~/models/bergamot --addr :8080\n  linguaspark serve --config linguaspark.yaml --eager",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Graceful shutdown (Ctrl+C / SIGTERM)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	f := cmd.Flags()
	f.String("addr", a.opts.Addr, "HTTP listen address, e.g. :8080 (defaults LINGUASPARK_ADDR)")
	f.Bool("eager", a.opts.EagerLoad, "Load every model at startup; /readyz reports loading until done")
	f.String("cors-origins", "", "Comma-separated allowed CORS origins; enables CORS when set")
	f.Int64("max-body-bytes", a.opts.MaxBodyBytes, "Maximum /translate request body size (0 uses 1 MiB)")
	f.Int64("translate-timeout", a.opts.TranslateTimeoutSec, "Seconds a /translate request may wait (0 disables)")
	return cmd
}

// serve runs the HTTP server until ctx is canceled.
func (a *app) serve(ctx context.Context) error {
	httpapi.SetLogger(a.component("http"))
	httpapi.SetMaxBodyBytes(a.opts.MaxBodyBytes)
	httpapi.SetTranslateTimeoutSeconds(a.opts.TranslateTimeoutSec)
	httpapi.SetCORSOptions(a.opts.CORSEnabled, a.opts.CORSOrigins, nil, nil)
	httpapi.SetBaseContext(ctx)

	st, err := a.buildStack(manager.NewLogPublisher(a.component("events")))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close")
		}
	}()

	if a.opts.EagerLoad {
		go func() {
			if err := st.mgr.LoadAll(ctx); err != nil {
				a.log.Error().Err(err).Msg("eager load incomplete")
			}
		}()
	}

	srv := &http.Server{
		Addr:              a.opts.Addr,
		Handler:           httpapi.NewMux(st.mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.opts.Addr).Str("models_dir", a.opts.ModelsDir).Int("pairs", len(st.mgr.Languages())).Msg("linguaspark listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown error")
	}
	a.log.Info().Msg("server stopped")
	return nil
}
