package application

import (
	"context"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/domain/payment"
	"github.com/Hosni10/boatify-server/internal/events"
	"github.com/Hosni10/boatify-server/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentInput holds the fields accepted when recording a payment.
type PaymentInput struct {
	BookingID     uuid.UUID
	Amount        float64
	Currency      string
	PaymentMethod string
	TransactionID string
}

// PaymentService records payment outcomes reported by the frontend and
// publishes them so the booking side can react.
type PaymentService struct {
	payments  payment.PaymentRepository
	bookings  booking.BookingRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	payments payment.PaymentRepository,
	bookings booking.BookingRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments:  payments,
		bookings:  bookings,
		publisher: publisher,
		logger:    logger,
	}
}

// RecordPayment stores a successful charge against a booking, marks the
// booking paid and publishes a completion event for downstream consumers.
func (s *PaymentService) RecordPayment(ctx context.Context, in PaymentInput) (*payment.Payment, error) {
	bk, err := s.bookings.FindByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(in.BookingID, in.Amount, in.Currency, in.PaymentMethod, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if err := p.SetState(payment.StateCompleted); err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, p); err != nil {
		return nil, err
	}

	if err := bk.MarkPaymentStatus(booking.PaymentPaid); err != nil {
		return nil, err
	}
	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishOutcome(ctx, p, events.PaymentCompleted)

	s.logger.Info("payment recorded",
		zap.String("payment_id", p.ID().String()),
		zap.String("booking_id", p.BookingID().String()),
		zap.Float64("amount", p.Amount()),
	)
	return p, nil
}

// GetPayment retrieves one payment record.
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

// ListPayments retrieves a page of payment records.
func (s *PaymentService) ListPayments(ctx context.Context, page, limit int) (domain.PaginatedResult[*payment.Payment], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.payments.ListAll(ctx, page, limit)
	if err != nil {
		return domain.PaginatedResult[*payment.Payment]{}, err
	}
	return domain.NewPaginatedResult(items, total, page, limit), nil
}

// ListBookingPayments retrieves the payments recorded against one booking.
func (s *PaymentService) ListBookingPayments(ctx context.Context, bookingID uuid.UUID) ([]*payment.Payment, error) {
	return s.payments.FindByBookingID(ctx, bookingID)
}

// UpdateState overwrites the payment state. A transition to refunded also
// publishes a refund event so the booking's payment status follows.
func (s *PaymentService) UpdateState(ctx context.Context, id uuid.UUID, state payment.PaymentState) (*payment.Payment, error) {
	p, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.SetState(state); err != nil {
		return nil, err
	}
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}

	if state == payment.StateRefunded {
		s.publishOutcome(ctx, p, events.PaymentRefunded)
	}
	return p, nil
}

func (s *PaymentService) publishOutcome(ctx context.Context, p *payment.Payment, eventType string) {
	if s.publisher == nil {
		return
	}
	evt, err := kafka.NewCloudEvent(eventSource, eventType, events.PaymentEvent{
		PaymentID:  p.ID(),
		BookingID:  p.BookingID(),
		Amount:     p.Amount(),
		Currency:   p.Currency(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to build payment event", zap.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicPaymentEvents, p.BookingID().String(), evt); err != nil {
		s.logger.Error("failed to publish payment event",
			zap.String("payment_id", p.ID().String()),
			zap.Error(err),
		)
	}
}
