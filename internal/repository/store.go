package repository

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/google/uuid"
)

// Store holds packages and bookings for the lifetime of the process.
// All access goes through mu; package and booking writes share it so that
// a checkout can change both at once. version counts package writes.
type Store struct {
	mu            sync.RWMutex
	id            string
	version       uint64
	packages      []domain.Package
	bookings      []domain.Booking
	nextBookingID int64
}

func NewStore(packages []domain.Package, bookings []domain.Booking) *Store {
	s := &Store{
		id:       uuid.NewString(),
		packages: append([]domain.Package(nil), packages...),
		bookings: append([]domain.Booking(nil), bookings...),
	}
	s.nextBookingID = int64(len(s.bookings)) + 1
	for _, b := range s.bookings {
		if b.ID >= s.nextBookingID {
			s.nextBookingID = b.ID + 1
		}
	}
	return s
}

// NewSeededStore returns a store with the fixed sample catalogue.
func NewSeededStore() *Store {
	return NewStore(SeedPackages(), SeedBookings())
}

// packageIndex returns the position of the first package with id, or -1. Caller holds mu.
func (s *Store) packageIndex(id int64) int {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return i
		}
	}
	return -1
}

// appendBooking assigns the next id and stores b. Caller holds mu for writing.
func (s *Store) appendBooking(b *domain.Booking) {
	b.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, *b)
}

// touchPackages marks the catalogue as changed. Caller holds mu for writing.
func (s *Store) touchPackages() {
	s.version++
}

// catalogueVersion is unique to this store instance and its current package state. Caller holds mu.
func (s *Store) catalogueVersion() string {
	return fmt.Sprintf("%s:%d", s.id, s.version)
}
