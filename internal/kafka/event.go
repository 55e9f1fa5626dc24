package kafka

import "time"

const (
	EventBookingCreated    = "booking_created"
	EventSeatsUpdated      = "seats_updated"
	EventBookingCheckedOut = "booking_checked_out"
)

// BookingEvent is published for every booking or slot change.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      int64     `json:"booking_id,omitempty"`
	PackageID      int64     `json:"package_id"`
	CustomerName   string    `json:"customer_name,omitempty"`
	BookingDate    string    `json:"booking_date,omitempty"`
	Seats          int       `json:"seats"`
	AvailableSlots *int      `json:"available_slots,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
