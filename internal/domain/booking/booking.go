package booking

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/google/uuid"
)

// Sentinel validation and transition errors, matched with errors.Is.
var (
	ErrInvalidDateRange   = domain.NewValidationError("end date must be after start date")
	ErrPastStartDate      = domain.NewValidationError("start date cannot be in the past")
	ErrInvalidGuestCount  = domain.NewValidationError("at least one guest is required")
	ErrMissingContactInfo = domain.NewValidationError("customer name, email and phone are required")
	ErrBoatUnavailable    = domain.NewValidationError("boat is not available for the selected dates")
	ErrAlreadyCancelled   = domain.NewInvalidStateError("booking is already cancelled")
	ErrAlreadyCompleted   = domain.NewInvalidStateError("booking is already completed")
)

// CreateInput holds the data needed to create a new booking.
type CreateInput struct {
	BoatID        uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartDate     time.Time
	EndDate       time.Time
	Guests        int
}

// Validate checks the input against the booking rules. Rules are checked in
// order and the first failure wins.
func (in CreateInput) Validate() error {
	if !in.StartDate.Before(in.EndDate) {
		return ErrInvalidDateRange
	}
	if in.StartDate.Before(Today()) {
		return ErrPastStartDate
	}
	if in.Guests < 1 {
		return ErrInvalidGuestCount
	}
	if in.CustomerName == "" || in.CustomerEmail == "" || in.CustomerPhone == "" {
		return ErrMissingContactInfo
	}
	return nil
}

// Booking is the aggregate root for the booking domain.
type Booking struct {
	id            uuid.UUID
	boatID        uuid.UUID
	customerID    uuid.UUID
	customerName  string
	customerEmail string
	customerPhone string
	startDate     time.Time
	endDate       time.Time
	guests        int
	totalPrice    float64
	status        BookingStatus
	paymentStatus PaymentStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking validates the input and creates a new Booking with
// status=pending. The total price is always derived from the boat's per-day
// rate, never taken from the caller.
func NewBooking(in CreateInput, pricePerDay float64) (*Booking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Booking{
		id:            uuid.New(),
		boatID:        in.BoatID,
		customerID:    in.CustomerID,
		customerName:  in.CustomerName,
		customerEmail: in.CustomerEmail,
		customerPhone: in.CustomerPhone,
		startDate:     in.StartDate,
		endDate:       in.EndDate,
		guests:        in.Guests,
		totalPrice:    RentalPrice(pricePerDay, in.StartDate, in.EndDate),
		status:        StatusPending,
		paymentStatus: PaymentPending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, boatID, customerID uuid.UUID,
	customerName, customerEmail, customerPhone string,
	startDate, endDate time.Time,
	guests int,
	totalPrice float64,
	status BookingStatus,
	paymentStatus PaymentStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		boatID:        boatID,
		customerID:    customerID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		startDate:     startDate,
		endDate:       endDate,
		guests:        guests,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters.
func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) BoatID() uuid.UUID            { return b.boatID }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) CustomerName() string         { return b.customerName }
func (b *Booking) CustomerEmail() string        { return b.customerEmail }
func (b *Booking) CustomerPhone() string        { return b.customerPhone }
func (b *Booking) StartDate() time.Time         { return b.startDate }
func (b *Booking) EndDate() time.Time           { return b.endDate }
func (b *Booking) Guests() int                  { return b.guests }
func (b *Booking) TotalPrice() float64          { return b.totalPrice }
func (b *Booking) Status() BookingStatus        { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Version() int64               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// Confirm transitions the booking from pending to confirmed.
func (b *Booking) Confirm() error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError("cannot confirm a " + string(b.status) + " booking")
	}
	b.status = StatusConfirmed
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the booking to cancelled.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return domain.NewInvalidStateError("cannot cancel a completed booking")
	}
	b.status = StatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}

// Complete transitions the booking to completed.
func (b *Booking) Complete() error {
	if b.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if !b.status.CanTransitionTo(StatusCompleted) {
		return domain.NewInvalidStateError("cannot complete a cancelled booking")
	}
	b.status = StatusCompleted
	b.updatedAt = time.Now().UTC()
	return nil
}

// TransitionTo dispatches a target-status change through the state machine.
// Every status update, confirmation included, routes through here so no
// unchecked write path exists.
func (b *Booking) TransitionTo(target BookingStatus) error {
	switch target {
	case StatusConfirmed:
		return b.Confirm()
	case StatusCancelled:
		return b.Cancel()
	case StatusCompleted:
		return b.Complete()
	case StatusPending:
		return domain.NewInvalidStateError("cannot transition a booking back to pending")
	default:
		return domain.NewValidationError("invalid booking status: " + string(target))
	}
}

// MarkPaymentStatus records a payment state change from the payment
// subsystem. It does not touch the booking state machine.
func (b *Booking) MarkPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("invalid payment status: " + string(status))
	}
	b.paymentStatus = status
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
