package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelpackages/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByPackage(ctx context.Context, packageID int64) ([]domain.Booking, error)
	CreateAndReserve(ctx context.Context, booking *domain.Booking) (*domain.Package, error)
}

type MemBookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) BookingRepository {
	return &MemBookingRepository{store: store}
}

// Create assigns booking.ID and appends it. The package reference is not checked.
func (r *MemBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.appendBooking(booking)
	return nil
}

func (r *MemBookingRepository) ListByPackage(ctx context.Context, packageID int64) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.PackageID == packageID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// CreateAndReserve checks the package exists, takes booking.Seats slots from it
// and appends the booking, all under one lock.
func (r *MemBookingRepository) CreateAndReserve(ctx context.Context, booking *domain.Booking) (*domain.Package, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.packageIndex(booking.PackageID)
	if i < 0 {
		return nil, fmt.Errorf("package %d: %w", booking.PackageID, domain.ErrInvalidReference)
	}
	r.store.packages[i].AvailableSlots -= booking.Seats
	r.store.touchPackages()
	r.store.appendBooking(booking)

	updated := r.store.packages[i]
	return &updated, nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
