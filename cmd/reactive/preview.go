package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/angeljsb/reactive/internal/config"
	"github.com/angeljsb/reactive/internal/errors"
	"github.com/angeljsb/reactive/pkg/serve"
)

func previewCmd() *cobra.Command {
	var (
		port  int
		host  string
		dir   string
		demos []string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the local preview server hosting the demo gallery.

Each demo runs server-side; the browser gets the rendered HTML plus
a thin client that forwards events and applies patches over
WebSocket.

Examples:
  reactive preview
  reactive preview --port=8080
  reactive preview --demo counter --demo todo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, dir, demos)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from reactive.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from reactive.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory holding reactive.json")
	cmd.Flags().StringSliceVar(&demos, "demo", nil, "Demos to mount (default: all)")

	return cmd
}

func runPreview(port int, host, dir string, demos []string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	opts := []serve.Option{
		serve.WithLogger(logger),
		serve.WithName(cfg.Name),
		serve.WithMetrics(cfg.Preview.Metrics),
	}
	if cfg.Preview.Tracing {
		opts = append(opts, serve.WithTracing("reactive-preview"))
	}
	srv := serve.New(opts...)

	selected := demoGallery()
	if len(demos) > 0 {
		selected = selected[:0]
		for _, name := range demos {
			d, ok := demoByName(name)
			if !ok {
				return errors.New("E100").WithDetail("No demo named " + name)
			}
			selected = append(selected, d)
		}
	}
	for _, d := range selected {
		srv.Mount(d.Name, d.Title, d.Kind)
	}

	printBanner()
	fmt.Println()
	success("preview server ready")
	info("Local:   http://%s/", cfg.Addr())
	if cfg.Preview.Metrics {
		info("Metrics: http://%s/metrics", cfg.Addr())
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, cfg.Addr()); err != nil {
		return err
	}
	warn("shutting down")
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}
