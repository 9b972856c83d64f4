package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgrunert/amaze/internal/server"
	"github.com/jgrunert/amaze/pkg/cache"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var flags ServerConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the amaze HTTP API",
		Long: `Run the amaze HTTP API.

Without --mongo mazes are stored in memory and lost on restart. With
--redis the pipeline cache is shared across instances; otherwise the
local file cache is used.`,
		Example: `  amaze serve
  amaze serve --addr :9090 --redis localhost:6379 --mongo mongodb://localhost:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file values are the base; explicitly set flags win.
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = flags.Addr
			}
			if cmd.Flags().Changed("redis") {
				cfg.RedisAddr = flags.RedisAddr
			}
			if cmd.Flags().Changed("redis-password") {
				cfg.RedisPassword = flags.RedisPassword
			}
			if cmd.Flags().Changed("redis-db") {
				cfg.RedisDB = flags.RedisDB
			}
			if cmd.Flags().Changed("mongo") {
				cfg.MongoURI = flags.MongoURI
			}
			if cmd.Flags().Changed("mongo-db") {
				cfg.MongoDatabase = flags.MongoDatabase
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&flags.RedisAddr, "redis", "", "redis address for a shared cache (empty: local file cache)")
	cmd.Flags().StringVar(&flags.RedisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&flags.RedisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&flags.MongoURI, "mongo", "", "mongodb connection uri (empty: in-memory store)")
	cmd.Flags().StringVar(&flags.MongoDatabase, "mongo-db", appName, "mongodb database name")

	return cmd
}

// runServe wires the store, cache and router and serves until ctx is done.
func (c *CLI) runServe(ctx context.Context, cfg ServerConfig) error {
	store, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			c.Logger.Error("close store", "error", err)
		}
	}()

	cch, err := c.newServerCache(ctx, cfg)
	if err != nil {
		return err
	}

	// Scope keys per app so a shared Redis can host other tenants.
	keyer := cache.NewScopedKeyer(nil, appName+":")
	runner := pipeline.NewRunner(cch, keyer, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(store, runner, c.Logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving http api", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// newStore selects MongoDB or the in-memory store.
func (c *CLI) newStore(ctx context.Context, cfg ServerConfig) (server.Store, error) {
	if cfg.MongoURI == "" {
		c.Logger.Warn("no --mongo configured, mazes are stored in memory")
		return server.NewMemoryStore(), nil
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.NewMongoStore(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
}

// newServerCache selects Redis or the local file cache.
func (c *CLI) newServerCache(ctx context.Context, cfg ServerConfig) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		return c.newCache(false)
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return cache.NewRedisCache(connectCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}
