package notify

import (
	"context"

	"github.com/Domenick1991/travelpackages/internal/kafka"
	"go.uber.org/zap"
)

// Notifier turns booking events into customer-facing notifications.
// For now a notification is a structured log line.
type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Send(ctx context.Context, event kafka.BookingEvent) error {
	fields := []zap.Field{
		zap.String("type", event.Type),
		zap.Int64("package_id", event.PackageID),
		zap.Int("seats", event.Seats),
	}
	if event.BookingID != 0 {
		fields = append(fields, zap.Int64("booking_id", event.BookingID))
	}
	if event.CustomerName != "" {
		fields = append(fields, zap.String("customer", event.CustomerName))
	}
	if event.AvailableSlots != nil {
		fields = append(fields, zap.Int("available_slots", *event.AvailableSlots))
	}
	n.logger.Info("notify", fields...)
	return nil
}
