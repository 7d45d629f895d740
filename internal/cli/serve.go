package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"MiniLibrary/internal/auth"
	"MiniLibrary/internal/catalog"
	"MiniLibrary/pkg/kit"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().String("port", "", "listen port (env PORT)")
	_ = opts.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(ctx context.Context, opts *options) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	lib, err := buildLibrary(cfg)
	if err != nil {
		log.Error("seeding catalog failed", zap.Error(err))
		return err
	}
	log.Info("catalog seeded", zap.Int("products", lib.Count()), zap.Int("genres", lib.GenreCount()))

	s := &catalog.Server{
		Store:       catalog.NewMemStore(lib),
		Log:         log,
		WriteLimits: kit.NewIPRateLimiter(cfg.WriteLimitPerMin, time.Minute),
	}
	if cfg.JWTSecret != "" {
		s.Tokens = auth.NewTokenMaker(cfg.JWTSecret)
	} else {
		log.Warn("JWT_SECRET not set, write routes are open")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := kit.RunHTTPServer(ctx, ":"+cfg.Port, h, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
		return err
	}
	return nil
}
