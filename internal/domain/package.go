package domain

// Package is a bookable travel offering. Only AvailableSlots changes after startup.
type Package struct {
	ID             int64   `json:"packageId"`
	Destination    string  `json:"destination"`
	Price          float64 `json:"price"`
	Duration       int     `json:"duration"`
	AvailableSlots int     `json:"availableSlots"`
}
