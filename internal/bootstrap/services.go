package bootstrap

import (
	"context"
	"time"

	"github.com/Domenick1991/travelpackages/config"
	"github.com/Domenick1991/travelpackages/internal/cache"
	"github.com/Domenick1991/travelpackages/internal/kafka"
	"github.com/Domenick1991/travelpackages/internal/repository"
	"github.com/Domenick1991/travelpackages/internal/service/booking"
	"github.com/Domenick1991/travelpackages/internal/service/packages"
	"go.uber.org/zap"
)

// Services is the assembled application. Close releases the optional cache and producer.
type Services struct {
	Packages *packages.PackageService
	Bookings *booking.BookingService

	closers []func() error
}

func (s *Services) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

// NewServices builds services over store. Redis and Kafka are attached only when configured.
func NewServices(ctx context.Context, cfg *config.Config, logger *zap.Logger, store *repository.Store) *Services {
	s := &Services{}

	packageOpts := []packages.PackageServiceOption{packages.WithLogger(logger)}
	bookingOpts := []booking.BookingServiceOption{booking.WithLogger(logger)}

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Warn("redis unavailable, catalogue cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = redisCache.Close()
		} else {
			packageOpts = append(packageOpts, packages.WithCache(redisCache))
			s.closers = append(s.closers, redisCache.Close)
		}
		cancel()
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		packageOpts = append(packageOpts, packages.WithProducer(producer, cfg.Kafka.BookingEventsTopic, cfg.Kafka.NotificationsTopic))
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic, cfg.Kafka.NotificationsTopic))
		s.closers = append(s.closers, producer.Close)
	}

	s.Packages = packages.NewPackageService(repository.NewPackageRepository(store), packageOpts...)
	s.Bookings = booking.NewBookingService(repository.NewBookingRepository(store), bookingOpts...)
	return s
}
