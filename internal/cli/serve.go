package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xinfuwcx/tieback/internal/server"
	"github.com/xinfuwcx/tieback/pkg/cache"
	"github.com/xinfuwcx/tieback/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the tieback HTTP API server.

Configuration comes from environment variables (a .env file in the working
directory is honored):

  TIEBACK_ADDR              listen address (default :8080)
  TIEBACK_REDIS_URL         shared Redis cache (default: in-process LRU)
  TIEBACK_MONGO_URI         persistent layout storage (default: in-memory)
  TIEBACK_MONGO_DB          MongoDB database name (default tieback)
  TIEBACK_CACHE_ENTRIES     in-process cache size (default 1024)
  TIEBACK_SHUTDOWN_TIMEOUT  graceful shutdown bound (default 10s)

The server stops gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides TIEBACK_ADDR)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cfg := server.LoadConfig()
	if addr != "" {
		cfg.Addr = addr
	}

	layoutCache, err := c.newServerCache(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := c.newServerStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, store, c.Logger)
	return srv.ListenAndServe(ctx, cfg.Addr, cfg.ShutdownTimeout)
}

// newServerCache picks Redis when configured, an in-process LRU otherwise.
func (c *CLI) newServerCache(ctx context.Context, cfg server.Config) (cache.Cache, error) {
	if cfg.RedisURL != "" {
		c.Logger.Info("using redis cache")
		redisCache, err := cache.NewRedisCacheFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return redisCache, nil
	}
	return cache.NewMemoryCache(cfg.CacheEntries)
}

// newServerStore picks MongoDB when configured, an in-memory store otherwise.
func (c *CLI) newServerStore(ctx context.Context, cfg server.Config) (server.LayoutStore, error) {
	if cfg.MongoURI != "" {
		c.Logger.Info("using mongodb store", "database", cfg.MongoDatabase)
		store, err := server.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		return store, nil
	}
	c.Logger.Warn("no TIEBACK_MONGO_URI set, layouts are lost on restart")
	return server.NewMemoryStore(), nil
}
