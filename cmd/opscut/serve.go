package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hitushen/opscut/internal/config"
	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/server"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		addr        string
		contentFile string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the OpsCut web site",
		Long: `Serve runs the OpsCut web site. Settings come from OPSCUT_* environment
variables; flags override them.

Examples:
  opscut serve
  opscut serve --addr :9090 --content ./content.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.ConfigureRuntime()
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if contentFile != "" {
				cfg.ContentFile = contentFile
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides OPSCUT_HTTP_ADDR)")
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "content override file (YAML)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logging.For("serve")

	bundle, err := content.Resolve(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	srv, err := server.New(cfg, bundle)
	if err != nil {
		return fmt.Errorf("server init: %w", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// 事件流随进程信号一起结束，否则 Shutdown 会一直等到超时。
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Str("content", bundle.Source).Msg("OpsCut listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		// 优雅地关闭服务
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
		return nil
	})
	return g.Wait()
}
