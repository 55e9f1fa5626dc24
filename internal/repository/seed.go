package repository

import "github.com/Domenick1991/travelpackages/internal/domain"

func SeedPackages() []domain.Package {
	return []domain.Package{
		{ID: 1, Destination: "Paris", Price: 1500, Duration: 7, AvailableSlots: 10},
		{ID: 2, Destination: "Rome", Price: 1200, Duration: 5, AvailableSlots: 15},
		{ID: 3, Destination: "Tokyo", Price: 2000, Duration: 10, AvailableSlots: 8},
		{ID: 4, Destination: "New York", Price: 1700, Duration: 7, AvailableSlots: 12},
		{ID: 5, Destination: "Dubai", Price: 1100, Duration: 4, AvailableSlots: 20},
		{ID: 6, Destination: "Sydney", Price: 2500, Duration: 12, AvailableSlots: 5},
		{ID: 7, Destination: "Cape Town", Price: 1800, Duration: 8, AvailableSlots: 6},
		{ID: 8, Destination: "Bangkok", Price: 800, Duration: 3, AvailableSlots: 25},
		{ID: 9, Destination: "Barcelona", Price: 1400, Duration: 6, AvailableSlots: 10},
		{ID: 10, Destination: "Bali", Price: 1300, Duration: 5, AvailableSlots: 15},
		{ID: 11, Destination: "Istanbul", Price: 1000, Duration: 4, AvailableSlots: 18},
		{ID: 12, Destination: "London", Price: 1900, Duration: 9, AvailableSlots: 7},
		{ID: 13, Destination: "Hawaii", Price: 2200, Duration: 10, AvailableSlots: 8},
		{ID: 14, Destination: "Moscow", Price: 1600, Duration: 8, AvailableSlots: 10},
		{ID: 15, Destination: "Athens", Price: 1200, Duration: 6, AvailableSlots: 12},
	}
}

func SeedBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 1, PackageID: 1, CustomerName: "Anjali Seth", BookingDate: "2024-12-01", Seats: 2},
		{ID: 2, PackageID: 5, CustomerName: "Rahul", BookingDate: "2024-11-20", Seats: 3},
		{ID: 3, PackageID: 8, CustomerName: "Kiran Wankhade", BookingDate: "2024-10-15", Seats: 1},
		{ID: 4, PackageID: 3, CustomerName: "Robert", BookingDate: "2024-09-10", Seats: 4},
		{ID: 5, PackageID: 12, CustomerName: "Aryan Khan", BookingDate: "2024-08-25", Seats: 2},
	}
}
