package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/travelpackages/api"
	"github.com/Domenick1991/travelpackages/config"
	"github.com/Domenick1991/travelpackages/internal/docs"
	"github.com/Domenick1991/travelpackages/internal/service/booking"
	"github.com/Domenick1991/travelpackages/internal/service/packages"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const openAPIPath = "/docs/openapi.json"

// NewRouter wires handlers, middleware and docs onto a gin engine.
func NewRouter(cfg *config.Config, logger *zap.Logger, packageSvc packages.PackageUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestID())
	router.Use(api.Logger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", api.RequestIDHeader},
		ExposeHeaders:   []string{api.RequestIDHeader},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.NewPackageHandler(packageSvc).Register(router.Group("/packages"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))

	if cfg.HTTP.Swagger {
		router.GET(openAPIPath, func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", docs.OpenAPI)
		})
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))
	}

	return router
}

// Run serves handler on cfg.HTTP.Address until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("listen http %s: %w", cfg.HTTP.Address, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
