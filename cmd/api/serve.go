package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"grubdash/pkg/api"
	"grubdash/pkg/config"
	"grubdash/pkg/events"
	"grubdash/pkg/idgen"
	"grubdash/pkg/logger"
	"grubdash/pkg/otel"
	"grubdash/pkg/seed"
	"grubdash/pkg/store"
)

func newServeCmd() *cobra.Command {
	var (
		cfgPath string
		addr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides config")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, level, cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTELHost,
		Stdout:      cfg.OTELStdout,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	var redisClient *redis.Client
	if cfg.IDStrategy == idgen.StrategyRedis {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
	}
	dishIDs, err := newGenerator(cfg.IDStrategy, redisClient, "dishes")
	if err != nil {
		return err
	}
	orderIDs, err := newGenerator(cfg.IDStrategy, redisClient, "orders")
	if err != nil {
		return err
	}
	st := store.New(dishIDs, orderIDs)

	if cfg.SeedFile != "" {
		data, err := seed.LoadFile(ctx, st, cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info(ctx, "seeded", "dishes", len(data.Dishes), "orders", len(data.Orders))
	}

	var pub events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		p, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("rabbitmq: %w", err)
		}
		pub = p
		log.Info(ctx, "publishing order events", "exchange", cfg.AMQPExchange)
	}
	defer pub.Close()

	handler := api.NewRouter(api.Deps{
		Log:         log,
		Tracer:      tp.Tracer(cfg.ServiceName),
		Dishes:      st.Dishes,
		Orders:      st.Orders,
		Events:      pub,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "tls", cfg.TLS())
		if cfg.TLS() {
			errCh <- srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info(context.Background(), "server stopped")
	return nil
}

// newGenerator keeps a nil *redis.Client from becoming a non-nil Cmdable.
func newGenerator(strategy string, client *redis.Client, collection string) (idgen.Generator, error) {
	if client == nil {
		return idgen.New(strategy, nil, collection)
	}
	return idgen.New(strategy, client, collection)
}
