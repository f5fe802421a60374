package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lmnode/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr           string
		corsOrigins    string
		executeTimeout int64
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the node over HTTP",
		Example: "  lmnode serve --addr :8080 --host localhost:1234",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("execute-timeout") {
				cfg.ExecuteTimeoutSeconds = executeTimeout
			}
			if cmd.Flags().Changed("cors-origins") {
				cfg.CORSOrigins = splitCSV(corsOrigins)
				cfg.CORSEnabled = len(cfg.CORSOrigins) > 0
			}

			httpapi.SetLogger(a.logger)
			httpapi.SetRequestLogLevel(cfg.LogLevel)
			httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
			httpapi.SetExecuteTimeoutSeconds(cfg.ExecuteTimeoutSeconds)
			httpapi.SetDefaultParams(cfg.Node)
			httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
				[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
				[]string{"Content-Type", "X-Log-Level"})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			httpapi.SetBaseContext(ctx)
			defer httpapi.SetBaseContext(nil)

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			srv := &http.Server{Handler: httpapi.NewMux(a.newNode()), ReadHeaderTimeout: 10 * time.Second}
			errCh := make(chan error, 1)
			go func() {
				a.logger.Info().Str("addr", ln.Addr().String()).Str("lmstudio", cfg.Host).Msg("lmnode listening")
				errCh <- srv.Serve(ln)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}
			// Graceful shutdown (Ctrl+C / SIGTERM)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Warn().Err(err).Msg("graceful shutdown error")
				return err
			}
			a.logger.Info().Msg("lmnode stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080 (default from config)")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins; enables CORS")
	cmd.Flags().Int64Var(&executeTimeout, "execute-timeout", 0, "Upper bound in seconds for a whole /execute batch (default from config, 0 = none)")
	return cmd
}
