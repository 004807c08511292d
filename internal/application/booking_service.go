package application

import (
	"context"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/events"
	"github.com/Hosni10/boatify-server/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const eventSource = "boatify-server"

// EventPublisher publishes CloudEvents. Satisfied by kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event kafka.CloudEvent) error
}

// BookingService orchestrates the booking lifecycle and availability queries.
type BookingService struct {
	bookings  booking.BookingRepository
	boats     boat.BoatRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings booking.BookingRepository,
	boats boat.BoatRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		boats:     boats,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates the request, checks availability against the
// current booking snapshot and stores the booking. The repository re-checks
// the interval inside its insert transaction, so two concurrent requests for
// overlapping dates cannot both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, in booking.CreateInput) (*booking.Booking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	bt, err := s.boats.FindByID(ctx, in.BoatID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.bookings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !booking.IsBoatAvailable(in.BoatID, in.StartDate, in.EndDate, snapshot) {
		return nil, booking.ErrBoatUnavailable
	}

	bk, err := booking.NewBooking(in, bt.PricePerDay())
	if err != nil {
		return nil, err
	}

	if err := s.bookings.SaveIfAvailable(ctx, bk); err != nil {
		return nil, err
	}

	s.publishBookingCreated(ctx, bk)

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("boat_id", bk.BoatID().String()),
		zap.Float64("total_price", bk.TotalPrice()),
	)
	return bk, nil
}

// GetBooking retrieves one booking.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

// ListBookings retrieves a page of bookings.
func (s *BookingService) ListBookings(ctx context.Context, page, limit int) (domain.PaginatedResult[*booking.Booking], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.bookings.ListAll(ctx, page, limit)
	if err != nil {
		return domain.PaginatedResult[*booking.Booking]{}, err
	}
	return domain.NewPaginatedResult(items, total, page, limit), nil
}

// UpdateStatus routes a lifecycle change through the booking state machine
// and persists it with optimistic locking.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, target booking.BookingStatus) (*booking.Booking, error) {
	bk, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := bk.Status()
	if err := bk.TransitionTo(target); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, bk, oldStatus)

	s.logger.Info("booking status updated",
		zap.String("booking_id", bk.ID().String()),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(bk.Status())),
	)
	return bk, nil
}

// BoatStats computes aggregate booking statistics for one boat.
func (s *BookingService) BoatStats(ctx context.Context, boatID uuid.UUID) (booking.BookingStats, error) {
	bookings, err := s.bookings.FindByBoatID(ctx, boatID)
	if err != nil {
		return booking.BookingStats{}, err
	}
	return booking.Stats(boatID, bookings), nil
}

// CheckAvailability reports whether the boat is free for the interval.
func (s *BookingService) CheckAvailability(ctx context.Context, boatID uuid.UUID, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, booking.ErrInvalidDateRange
	}
	if _, err := s.boats.FindByID(ctx, boatID); err != nil {
		return false, err
	}

	snapshot, err := s.bookings.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return booking.IsBoatAvailable(boatID, start, end, snapshot), nil
}

// AvailableBoats lists every boat free for the interval.
func (s *BookingService) AvailableBoats(ctx context.Context, start, end time.Time) ([]*boat.Boat, error) {
	if !start.Before(end) {
		return nil, booking.ErrInvalidDateRange
	}

	boats, err := s.boats.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.bookings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return booking.AvailableBoats(boats, start, end, snapshot), nil
}

// Calendar produces the boat's day-by-day availability for one month.
func (s *BookingService) Calendar(ctx context.Context, boatID uuid.UUID, month time.Month, year int) ([]booking.AvailabilitySlot, error) {
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month must be between 1 and 12")
	}
	if _, err := s.boats.FindByID(ctx, boatID); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByBoatID(ctx, boatID)
	if err != nil {
		return nil, err
	}
	return booking.AvailabilityCalendar(boatID, month, year, bookings), nil
}

// NextAvailableDate returns the earliest date the boat can start a rental.
func (s *BookingService) NextAvailableDate(ctx context.Context, boatID uuid.UUID) (time.Time, error) {
	if _, err := s.boats.FindByID(ctx, boatID); err != nil {
		return time.Time{}, err
	}

	bookings, err := s.bookings.FindByBoatID(ctx, boatID)
	if err != nil {
		return time.Time{}, err
	}
	return booking.NextAvailableDate(boatID, bookings), nil
}

// MarkBookingPayment applies a payment outcome reported by the payment
// subsystem. It implements events.PaymentMarker.
func (s *BookingService) MarkBookingPayment(ctx context.Context, bookingID uuid.UUID, status booking.PaymentStatus) error {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := bk.MarkPaymentStatus(status); err != nil {
		return err
	}
	bk.IncrementVersion()
	return s.bookings.Update(ctx, bk)
}

func (s *BookingService) publishBookingCreated(ctx context.Context, bk *booking.Booking) {
	if s.publisher == nil {
		return
	}
	evt, err := kafka.NewCloudEvent(eventSource, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  bk.ID(),
		BoatID:     bk.BoatID(),
		CustomerID: bk.CustomerID(),
		StartDate:  bk.StartDate(),
		EndDate:    bk.EndDate(),
		TotalPrice: bk.TotalPrice(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to build booking created event", zap.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicBookingEvents, bk.ID().String(), evt); err != nil {
		// The booking is stored; event delivery failure must not fail the request.
		s.logger.Error("failed to publish booking created event",
			zap.String("booking_id", bk.ID().String()),
			zap.Error(err),
		)
	}
}

func (s *BookingService) publishStatusChanged(ctx context.Context, bk *booking.Booking, oldStatus booking.BookingStatus) {
	if s.publisher == nil {
		return
	}
	evt, err := kafka.NewCloudEvent(eventSource, events.BookingStatusChanged, events.BookingStatusChangedEvent{
		BookingID:  bk.ID(),
		BoatID:     bk.BoatID(),
		OldStatus:  string(oldStatus),
		NewStatus:  string(bk.Status()),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to build status changed event", zap.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicBookingEvents, bk.ID().String(), evt); err != nil {
		s.logger.Error("failed to publish status changed event",
			zap.String("booking_id", bk.ID().String()),
			zap.Error(err),
		)
	}
}
