package events

import (
	"time"

	"github.com/google/uuid"
)

// Kafka topics.
const (
	TopicBookingEvents = "booking.events"
	TopicPaymentEvents = "payment.events"
)

// Event types.
const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	PaymentCompleted     = "payment.completed"
	PaymentRefunded      = "payment.refunded"
)

// BookingCreatedEvent is published when a new booking is stored.
type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	BoatID     uuid.UUID `json:"boat_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published on every lifecycle transition.
type BookingStatusChangedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	BoatID     uuid.UUID `json:"boat_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentEvent is consumed from the payment subsystem; it reports the outcome
// of a payment attempt for a booking.
type PaymentEvent struct {
	PaymentID  uuid.UUID `json:"payment_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}
