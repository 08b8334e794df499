package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightasset/config"
	"github.com/Domenick1991/flightasset/internal/bootstrap"
	"github.com/Domenick1991/flightasset/internal/cache"
	"github.com/Domenick1991/flightasset/internal/kafka"
	"github.com/Domenick1991/flightasset/internal/logger"
	"github.com/Domenick1991/flightasset/internal/metrics"
	"github.com/Domenick1991/flightasset/internal/provider"
	"github.com/Domenick1991/flightasset/internal/repository"
	"github.com/Domenick1991/flightasset/internal/service/auth"
	"github.com/Domenick1991/flightasset/internal/service/flights"
	"github.com/Domenick1991/flightasset/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Cache.FlightsTTL())
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log.With().Str("component", "kafka").Logger())
	defer producer.Close()

	flightProvider, err := newProvider(cfg, pool)
	if err != nil {
		return err
	}

	m := metrics.New()
	authority := tokens.NewAuthority(
		cfg.Auth.SigningKey,
		tokens.WithLifetimes(cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL),
		tokens.WithIssuer(cfg.Auth.Issuer),
	)

	authService := auth.NewAuthService(
		repository.NewUserRepository(pool),
		authority,
		auth.WithAccountEvents(producer, cfg.Kafka.AccountsTopic),
		auth.WithLogger(componentLogger(log, "auth")),
	)
	flightOpts := []flights.FlightServiceOption{
		flights.WithRecorder(m),
		flights.WithLogger(componentLogger(log, "flights")),
	}
	if cfg.Cache.Enabled() {
		flightOpts = append(flightOpts, flights.WithCache(redisCache))
	} else {
		log.Info().Msg("flight response cache disabled")
	}
	flightService := flights.NewFlightService(flightProvider, flightOpts...)

	router := bootstrap.NewRouter(bootstrap.Dependencies{
		Auth:    authService,
		Flights: flightService,
		Metrics: m,
		Checks: []bootstrap.HealthCheck{
			{Name: "postgres", Check: pool.Ping},
			{Name: "redis", Check: redisCache.Ping},
		},
		Log: log,
	})

	return bootstrap.Run(ctx, cfg.HTTP, router, log)
}

func newProvider(cfg *config.Config, pool *pgxpool.Pool) (flights.Provider, error) {
	switch cfg.Provider.Type {
	case config.ProviderPostgres:
		return provider.NewPostgresProvider(repository.NewFlightRepository(pool)), nil
	default:
		p, err := provider.NewHTTPProvider(cfg.Provider.BaseURL, cfg.Provider.Timeout)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func componentLogger(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

