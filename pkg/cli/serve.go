package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/cli/config"
	controller "github.com/prefix-dev/pixi-testsuite/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

func cmdServeChannel() *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:  "serve-channel",
		Usage: "Serve the artifacts directory as a local channel over HTTP",
		Flags: serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting channel server",
				slog.String("addr", serverCfg.Addr),
				slog.String("dir", serverCfg.Dir),
			)

			server, err := controller.NewServer(
				ctx,
				controller.WithAddr(serverCfg.Addr),
				controller.WithChannelDir(serverCfg.Dir),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create channel server")
			}

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
