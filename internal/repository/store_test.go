package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageRepository_List(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())

	packages, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, packages, 15)
	assert.Equal(t, "Paris", packages[0].Destination)
	assert.Equal(t, "Athens", packages[14].Destination)
}

func TestPackageRepository_ListReturnsCopy(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())
	ctx := context.Background()

	packages, err := repo.List(ctx)
	require.NoError(t, err)
	packages[0].AvailableSlots = 0

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, again[0].AvailableSlots)
}

func TestPackageRepository_GetByDestination(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())
	ctx := context.Background()

	for _, name := range []string{"Paris", "paris", "PARIS", "pArIs"} {
		p, err := repo.GetByDestination(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, domain.Package{ID: 1, Destination: "Paris", Price: 1500, Duration: 7, AvailableSlots: 10}, *p)
	}

	p, err := repo.GetByDestination(ctx, "new york")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
}

func TestPackageRepository_GetByDestination_NotFound(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())

	p, err := repo.GetByDestination(context.Background(), "Atlantis")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackageRepository_GetByDestination_FirstMatchWins(t *testing.T) {
	store := NewStore([]domain.Package{
		{ID: 7, Destination: "Lima"},
		{ID: 8, Destination: "LIMA"},
	}, nil)
	repo := NewPackageRepository(store)

	p, err := repo.GetByDestination(context.Background(), "lima")

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
}

func TestPackageRepository_AdjustSlots(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())
	ctx := context.Background()

	p, err := repo.AdjustSlots(ctx, 1, -2)
	require.NoError(t, err)
	assert.Equal(t, 8, p.AvailableSlots)

	p, err = repo.AdjustSlots(ctx, 1, -20)
	require.NoError(t, err)
	assert.Equal(t, -12, p.AvailableSlots)

	p, err = repo.AdjustSlots(ctx, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 18, p.AvailableSlots)
}

func TestPackageRepository_AdjustSlots_Unknown(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())

	p, err := repo.AdjustSlots(context.Background(), 999, -1)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestPackageRepository_AdjustSlots_Concurrent(t *testing.T) {
	repo := NewPackageRepository(NewSeededStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.AdjustSlots(ctx, 8, -1)
		}()
	}
	wg.Wait()

	p, err := repo.GetByID(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 25-100, p.AvailableSlots)
}

func TestBookingRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewBookingRepository(NewSeededStore())
	ctx := context.Background()

	first := &domain.Booking{PackageID: 2, CustomerName: "John Doe", BookingDate: "2025-01-01", Seats: 2}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(6), first.ID)

	second := &domain.Booking{PackageID: 999}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(7), second.ID)

	bookings, err := repo.ListByPackage(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, []domain.Booking{*second}, bookings)
}

func TestBookingRepository_ListByPackage(t *testing.T) {
	repo := NewBookingRepository(NewSeededStore())
	ctx := context.Background()

	bookings, err := repo.ListByPackage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Booking{
		{ID: 1, PackageID: 1, CustomerName: "Anjali Seth", BookingDate: "2024-12-01", Seats: 2},
	}, bookings)

	require.NoError(t, repo.Create(ctx, &domain.Booking{PackageID: 1, CustomerName: "Second"}))
	bookings, err = repo.ListByPackage(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Anjali Seth", bookings[0].CustomerName)
	assert.Equal(t, "Second", bookings[1].CustomerName)
}

func TestBookingRepository_ListByPackage_Empty(t *testing.T) {
	repo := NewBookingRepository(NewSeededStore())

	bookings, err := repo.ListByPackage(context.Background(), 2)

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestBookingRepository_CreateAndReserve(t *testing.T) {
	store := NewSeededStore()
	bookings := NewBookingRepository(store)
	packages := NewPackageRepository(store)
	ctx := context.Background()

	booking := &domain.Booking{PackageID: 3, CustomerName: "Mei", BookingDate: "2025-03-01", Seats: 3}
	p, err := bookings.CreateAndReserve(ctx, booking)

	require.NoError(t, err)
	assert.Equal(t, int64(6), booking.ID)
	assert.Equal(t, 5, p.AvailableSlots)

	stored, err := packages.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.AvailableSlots)
}

func TestBookingRepository_CreateAndReserve_UnknownPackage(t *testing.T) {
	store := NewSeededStore()
	bookings := NewBookingRepository(store)
	ctx := context.Background()

	p, err := bookings.CreateAndReserve(ctx, &domain.Booking{PackageID: 999, Seats: 1})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	next := &domain.Booking{PackageID: 1}
	require.NoError(t, bookings.Create(ctx, next))
	assert.Equal(t, int64(6), next.ID)
}

func TestNewStore_CounterFollowsHighestID(t *testing.T) {
	store := NewStore(nil, []domain.Booking{{ID: 10, PackageID: 1}})
	repo := NewBookingRepository(store)

	b := &domain.Booking{PackageID: 1}
	require.NoError(t, repo.Create(context.Background(), b))

	assert.Equal(t, int64(11), b.ID)
}

func TestCatalogueVersion_ChangesOnPackageWrites(t *testing.T) {
	store := NewSeededStore()
	packages := NewPackageRepository(store)
	bookings := NewBookingRepository(store)
	ctx := context.Background()

	v0, err := packages.CatalogueVersion(ctx)
	require.NoError(t, err)

	require.NoError(t, bookings.Create(ctx, &domain.Booking{PackageID: 1}))
	same, err := packages.CatalogueVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, v0, same)

	_, err = packages.AdjustSlots(ctx, 1, -1)
	require.NoError(t, err)
	v1, err := packages.CatalogueVersion(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, v0, v1)

	_, err = bookings.CreateAndReserve(ctx, &domain.Booking{PackageID: 2, Seats: 1})
	require.NoError(t, err)
	v2, err := packages.CatalogueVersion(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)

	_, err = packages.AdjustSlots(ctx, 999, -1)
	require.Error(t, err)
	v3, err := packages.CatalogueVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, v2, v3)
}

func TestCatalogueVersion_DiffersAcrossStores(t *testing.T) {
	ctx := context.Background()

	a, err := NewPackageRepository(NewSeededStore()).CatalogueVersion(ctx)
	require.NoError(t, err)
	b, err := NewPackageRepository(NewSeededStore()).CatalogueVersion(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
