package packages

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/Domenick1991/travelpackages/internal/kafka"
	"github.com/Domenick1991/travelpackages/internal/repository"
	"github.com/Domenick1991/travelpackages/internal/service/booking"
	"go.uber.org/zap"
)

type PackageUseCase interface {
	List(ctx context.Context) ([]domain.Package, error)
	GetByDestination(ctx context.Context, destination string) (*domain.Package, error)
	UpdateSeats(ctx context.Context, input UpdateSeatsInput) (*domain.Package, error)
}

// Cache stores catalogue snapshots by catalogue version. A nil Cache disables caching.
type Cache interface {
	GetPackages(ctx context.Context, version string) ([]domain.Package, error)
	SetPackages(ctx context.Context, version string, packages []domain.Package) error
}

type UpdateSeatsInput struct {
	PackageID   int64 `json:"packageId"`
	SeatsBooked int   `json:"seatsBooked"`
}

type PackageService struct {
	repo               repository.PackageRepository
	cache              Cache
	producer           booking.Producer
	eventsTopic        string
	notificationsTopic string
	logger             *zap.Logger
}

type PackageServiceOption func(*PackageService)

func WithCache(cache Cache) PackageServiceOption {
	return func(s *PackageService) {
		s.cache = cache
	}
}

func WithProducer(producer booking.Producer, eventsTopic, notificationsTopic string) PackageServiceOption {
	return func(s *PackageService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithLogger(logger *zap.Logger) PackageServiceOption {
	return func(s *PackageService) {
		s.logger = logger
	}
}

func NewPackageService(repo repository.PackageRepository, opts ...PackageServiceOption) *PackageService {
	service := &PackageService{
		repo:   repo,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// List serves the catalogue from cache when it can; cache errors fall through to the store.
// The version is read before the store, so a snapshot is only ever stored under
// a version it is at least as new as.
func (s *PackageService) List(ctx context.Context) ([]domain.Package, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	version, err := s.repo.CatalogueVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogue version: %w", err)
	}

	cached, err := s.cache.GetPackages(ctx, version)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		s.logger.Warn("read package cache", zap.Error(err))
	}

	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetPackages(ctx, version, packages); err != nil {
		s.logger.Warn("write package cache", zap.Error(err))
	}
	return packages, nil
}

func (s *PackageService) GetByDestination(ctx context.Context, destination string) (*domain.Package, error) {
	return s.repo.GetByDestination(ctx, destination)
}

// UpdateSeats subtracts SeatsBooked from the package's slots. The result may go negative.
func (s *PackageService) UpdateSeats(ctx context.Context, input UpdateSeatsInput) (*domain.Package, error) {
	updated, err := s.repo.AdjustSlots(ctx, input.PackageID, -input.SeatsBooked)
	if err != nil {
		return nil, fmt.Errorf("update seats: %w", err)
	}

	slots := updated.AvailableSlots
	booking.Publish(ctx, s.producer, s.logger, s.eventsTopic, s.notificationsTopic, kafka.BookingEvent{
		Type:           kafka.EventSeatsUpdated,
		PackageID:      updated.ID,
		Seats:          input.SeatsBooked,
		AvailableSlots: &slots,
	})
	return updated, nil
}

var _ PackageUseCase = (*PackageService)(nil)
