package payment

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListAll(ctx context.Context, page, limit int) ([]*Payment, int64, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*Payment, error)
	Save(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
}
