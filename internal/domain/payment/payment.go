package payment

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/google/uuid"
)

// PaymentState represents the state of a payment record. Payments are opaque
// pass-through records: the service never talks to a gateway, it just stores
// what the caller reports.
type PaymentState string

const (
	StatePending   PaymentState = "pending"
	StateCompleted PaymentState = "completed"
	StateFailed    PaymentState = "failed"
	StateRefunded  PaymentState = "refunded"
)

// IsValid returns true if the payment state is recognized.
func (s PaymentState) IsValid() bool {
	switch s {
	case StatePending, StateCompleted, StateFailed, StateRefunded:
		return true
	}
	return false
}

// Payment is a record of money movement against a booking.
type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	amount        float64
	currency      string
	state         PaymentState
	paymentMethod string
	transactionID string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment creates a pending payment record for a booking.
func NewPayment(bookingID uuid.UUID, amount float64, currency, paymentMethod, transactionID string) (*Payment, error) {
	if bookingID == uuid.Nil {
		return nil, domain.NewValidationError("booking ID is required")
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("payment amount must be positive")
	}
	if currency == "" {
		currency = "USD"
	}
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}

	now := time.Now().UTC()
	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		amount:        amount,
		currency:      currency,
		state:         StatePending,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a Payment from persistence data (no validation).
func Reconstruct(id, bookingID uuid.UUID, amount float64, currency string, state PaymentState, paymentMethod, transactionID string, createdAt, updatedAt time.Time) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		amount:        amount,
		currency:      currency,
		state:         state,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters.
func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) Amount() float64       { return p.amount }
func (p *Payment) Currency() string      { return p.currency }
func (p *Payment) State() PaymentState   { return p.state }
func (p *Payment) PaymentMethod() string { return p.paymentMethod }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }

// SetState overwrites the payment state.
func (p *Payment) SetState(state PaymentState) error {
	if !state.IsValid() {
		return domain.NewValidationError("invalid payment status: " + string(state))
	}
	p.state = state
	p.updatedAt = time.Now().UTC()
	return nil
}
