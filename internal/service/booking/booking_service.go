package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/Domenick1991/travelpackages/internal/kafka"
	"github.com/Domenick1991/travelpackages/internal/repository"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListByPackage(ctx context.Context, packageID int64) ([]domain.Booking, error)
	Checkout(ctx context.Context, input CreateBookingInput) (*CheckoutResult, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	logger             *zap.Logger
}

// CreateBookingInput carries the request fields as given; none are validated.
type CreateBookingInput struct {
	PackageID    int64  `json:"packageId"`
	CustomerName string `json:"customerName"`
	BookingDate  string `json:"bookingDate"`
	Seats        int    `json:"seats"`
}

type CheckoutResult struct {
	Booking domain.Booking `json:"booking"`
	Package domain.Package `json:"package"`
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, eventsTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithLogger(logger *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	booking := input.toBooking()
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.publish(ctx, kafka.BookingEvent{
		Type:         kafka.EventBookingCreated,
		BookingID:    booking.ID,
		PackageID:    booking.PackageID,
		CustomerName: booking.CustomerName,
		BookingDate:  booking.BookingDate,
		Seats:        booking.Seats,
	})
	return booking, nil
}

func (s *BookingService) ListByPackage(ctx context.Context, packageID int64) ([]domain.Booking, error) {
	return s.bookings.ListByPackage(ctx, packageID)
}

// Checkout records the booking and takes its seats from the package in one step.
func (s *BookingService) Checkout(ctx context.Context, input CreateBookingInput) (*CheckoutResult, error) {
	booking := input.toBooking()
	pkg, err := s.bookings.CreateAndReserve(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	slots := pkg.AvailableSlots
	s.publish(ctx, kafka.BookingEvent{
		Type:           kafka.EventBookingCheckedOut,
		BookingID:      booking.ID,
		PackageID:      booking.PackageID,
		CustomerName:   booking.CustomerName,
		BookingDate:    booking.BookingDate,
		Seats:          booking.Seats,
		AvailableSlots: &slots,
	})
	return &CheckoutResult{Booking: *booking, Package: *pkg}, nil
}

func (in CreateBookingInput) toBooking() *domain.Booking {
	return &domain.Booking{
		PackageID:    in.PackageID,
		CustomerName: in.CustomerName,
		BookingDate:  in.BookingDate,
		Seats:        in.Seats,
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) {
	Publish(ctx, s.producer, s.logger, s.eventsTopic, s.notificationsTopic, event)
}

// Publish sends event to eventsTopic and, when set, to notificationsTopic.
// Failures are logged and never returned.
func Publish(ctx context.Context, producer Producer, logger *zap.Logger, eventsTopic, notificationsTopic string, event kafka.BookingEvent) {
	if producer == nil || eventsTopic == "" {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	key := fmt.Sprintf("package-%d", event.PackageID)

	for _, topic := range []string{eventsTopic, notificationsTopic} {
		if topic == "" {
			continue
		}
		if err := producer.Publish(ctx, topic, key, event); err != nil {
			logger.Warn("publish event",
				zap.String("type", event.Type),
				zap.String("topic", topic),
				zap.Error(err),
			)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
