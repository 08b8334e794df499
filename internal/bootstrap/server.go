package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flightasset/api"
	"github.com/Domenick1991/flightasset/config"
	"github.com/Domenick1991/flightasset/internal/metrics"
	"github.com/Domenick1991/flightasset/internal/service/auth"
	"github.com/Domenick1991/flightasset/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Dependencies struct {
	Auth    auth.AuthUseCase
	Flights flights.FlightUseCase
	Metrics *metrics.Metrics
	Checks  []HealthCheck
	Log     zerolog.Logger
}

// NewRouter wires middleware and every HTTP route onto a fresh gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(deps.Log))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/healthz", healthHandler(deps.Checks))

	group := router.Group("/api")
	api.NewAuthHandler(deps.Auth, deps.Log).Register(group)
	api.NewFlightHandler(deps.Flights, deps.Log).Register(group.Group("/flights"))

	return router
}

func healthHandler(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		failed := gin.H{}
		for _, hc := range checks {
			if err := hc.Check(ctx); err != nil {
				failed[hc.Name] = err.Error()
			}
		}
		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Run serves handler on cfg.HTTP.Address and blocks until ctx is cancelled or
// the server fails. Cancellation triggers a graceful shutdown.
func Run(ctx context.Context, cfg config.HTTPConfig, handler http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Address).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
