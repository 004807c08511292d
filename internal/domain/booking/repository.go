package booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListAll retrieves all bookings with pagination.
	ListAll(ctx context.Context, page, limit int) ([]*Booking, int64, error)

	// Snapshot retrieves every stored booking as a read-only snapshot for
	// availability decisions.
	Snapshot(ctx context.Context) ([]*Booking, error)

	// FindByBoatID retrieves all bookings for one boat.
	FindByBoatID(ctx context.Context, boatID uuid.UUID) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// SaveIfAvailable re-checks the booking's interval against active
	// bookings inside a transaction and inserts only when no conflict
	// exists. This is the race-free alternative to check-then-Save.
	SaveIfAvailable(ctx context.Context, b *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, b *Booking) error
}
