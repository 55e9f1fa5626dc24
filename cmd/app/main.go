package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/travelpackages/config"
	"github.com/Domenick1991/travelpackages/internal/bootstrap"
	"github.com/Domenick1991/travelpackages/internal/logger"
	"github.com/Domenick1991/travelpackages/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run returns the exit code; deferred cleanup finishes before main exits.
func run() int {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Printf("init logger: %v", err)
		return 1
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := bootstrap.NewServices(ctx, cfg, zl, repository.NewSeededStore())
	defer services.Close()

	router := bootstrap.NewRouter(cfg, zl, services.Packages, services.Bookings)
	if err := bootstrap.Run(ctx, cfg, zl, router); err != nil {
		zl.Error("server error", zap.Error(err))
		return 1
	}
	return 0
}
