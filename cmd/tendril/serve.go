package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/tendril"
	httpAdapter "github.com/aretw0/tendril/internal/adapters/http"
	"github.com/aretw0/tendril/internal/adapters/redis"
	"github.com/aretw0/tendril/internal/adapters/sqlite"
	"github.com/aretw0/tendril/internal/config"
	"github.com/aretw0/tendril/pkg/adapters/memory"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/observability"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the tendril engine in server mode, exposing simulations, the machine
library and stored runs as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadServeConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		logger, err := cfg.Logger()
		if err != nil {
			fmt.Printf("Error configuring logger: %v\n", err)
			os.Exit(1)
		}

		store, err := buildStore(cfg)
		if err != nil {
			fmt.Printf("Error initializing run store: %v\n", err)
			os.Exit(1)
		}

		metrics := observability.New()

		engine, err := buildEngine(cfg, store, logger, metrics)
		if err != nil {
			fmt.Printf("Error initializing tendril: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics),
			httpAdapter.WithVersion(strings.TrimSpace(tendril.Version)),
		)

		srv := &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Tendril Server on %s\n", srv.Addr)
			fmt.Printf("Serving machines from: %s (store: %s)\n", cfg.Library, storeName(cfg))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Tendril Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "Path to a tendril.yaml config file")
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}

// loadServeConfig resolves the effective server configuration: defaults,
// then the config file, then environment variables, then explicit flags.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("library") {
		cfg.Library, _ = cmd.Flags().GetString("library")
	}
	if cmd.Flags().Changed("addr") {
		cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildStore picks the run store backend the configuration names.
func buildStore(cfg *config.Config) (ports.RunStore, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		return memory.NewStore(), nil

	case "redis":
		r := cfg.Store.Redis
		ttl, err := r.ParseTTL()
		if err != nil {
			return nil, fmt.Errorf("redis ttl: %w", err)
		}
		opts := []redis.Option{}
		if r.Prefix != "" {
			opts = append(opts, redis.WithPrefix(r.Prefix))
		}
		if ttl > 0 {
			opts = append(opts, redis.WithTTL(ttl))
		}
		return redis.New(r.Addr, r.Password, r.DB, opts...), nil

	case "sqlite":
		return sqlite.New(cfg.Store.SQLite.Path)
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func buildEngine(cfg *config.Config, store ports.RunStore, logger *slog.Logger, metrics *observability.Metrics) (*tendril.Engine, error) {
	// Validate() already vetted these strings.
	mode, err := domain.ParseTerminationMode(cfg.Simulation.Mode)
	if err != nil {
		return nil, err
	}
	metric, err := domain.ParseMetricKind(cfg.Simulation.Metric)
	if err != nil {
		return nil, err
	}

	return tendril.New(cfg.Library,
		tendril.WithStore(store),
		tendril.WithLogger(logger),
		tendril.WithLifecycleHooks(metrics.Hooks()),
		tendril.WithMaxDepth(cfg.Simulation.MaxDepth),
		tendril.WithTerminationMode(mode),
		tendril.WithMetric(metric),
	)
}

func storeName(cfg *config.Config) string {
	if cfg.Store.Backend == "" {
		return "memory"
	}
	return cfg.Store.Backend
}
