package domain

// Booking reserves seats against a package. PackageID is not checked on creation.
type Booking struct {
	ID           int64  `json:"bookingId"`
	PackageID    int64  `json:"packageId"`
	CustomerName string `json:"customerName"`
	BookingDate  string `json:"bookingDate"`
	Seats        int    `json:"seats"`
}
