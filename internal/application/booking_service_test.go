package application

import (
	"context"
	"testing"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBoat(t *testing.T, pricePerDay float64) *boat.Boat {
	t.Helper()
	b, err := boat.NewBoat("company_1", "Sea Breeze", "yacht", 8, pricePerDay, "Marina Bay", []string{"gps"}, "")
	require.NoError(t, err)
	return b
}

func futureDay(daysFromNow int) time.Time {
	return booking.Today().AddDate(0, 0, daysFromNow)
}

func validCreateInput(boatID uuid.UUID) booking.CreateInput {
	return booking.CreateInput{
		BoatID:        boatID,
		CustomerID:    uuid.New(),
		CustomerName:  "Alex Morgan",
		CustomerEmail: "alex@example.com",
		CustomerPhone: "+15550100",
		StartDate:     futureDay(10),
		EndDate:       futureDay(12),
		Guests:        4,
	}
}

func newBookingServiceForTest(t *testing.T) (*BookingService, *fakeBookingRepo, *fakeBoatRepo, *fakePublisher) {
	t.Helper()
	bookings := newFakeBookingRepo()
	boats := newFakeBoatRepo()
	publisher := &fakePublisher{}
	svc := NewBookingService(bookings, boats, publisher, zap.NewNop())
	return svc, bookings, boats, publisher
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("derives price from the boat's day rate", func(t *testing.T) {
		svc, _, boats, publisher := newBookingServiceForTest(t)
		bt := newTestBoat(t, 150)
		require.NoError(t, boats.Save(ctx, bt))

		bk, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
		require.NoError(t, err)

		assert.Equal(t, 300.0, bk.TotalPrice())
		assert.Equal(t, booking.StatusPending, bk.Status())
		assert.Equal(t, booking.PaymentPending, bk.PaymentStatus())

		published := publisher.published()
		require.Len(t, published, 1)
		assert.Equal(t, events.TopicBookingEvents, published[0].topic)
		assert.Equal(t, events.BookingCreated, published[0].event.Type)
		assert.Equal(t, bk.ID().String(), published[0].key)
	})

	t.Run("rejects unknown boat", func(t *testing.T) {
		svc, _, _, _ := newBookingServiceForTest(t)

		_, err := svc.CreateBooking(ctx, validCreateInput(uuid.New()))

		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("rejects overlapping dates", func(t *testing.T) {
		svc, _, boats, _ := newBookingServiceForTest(t)
		bt := newTestBoat(t, 100)
		require.NoError(t, boats.Save(ctx, bt))

		_, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
		require.NoError(t, err)

		in := validCreateInput(bt.ID())
		in.StartDate = futureDay(11)
		in.EndDate = futureDay(13)
		_, err = svc.CreateBooking(ctx, in)
		assert.ErrorIs(t, err, booking.ErrBoatUnavailable)
	})

	t.Run("allows back-to-back bookings sharing a boundary day", func(t *testing.T) {
		svc, _, boats, _ := newBookingServiceForTest(t)
		bt := newTestBoat(t, 100)
		require.NoError(t, boats.Save(ctx, bt))

		_, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
		require.NoError(t, err)

		in := validCreateInput(bt.ID())
		in.StartDate = futureDay(12)
		in.EndDate = futureDay(14)
		_, err = svc.CreateBooking(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("rejects invalid input before touching storage", func(t *testing.T) {
		svc, _, _, publisher := newBookingServiceForTest(t)

		in := validCreateInput(uuid.New())
		in.Guests = 0
		_, err := svc.CreateBooking(ctx, in)

		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
		assert.Empty(t, publisher.published())
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*BookingService, *fakePublisher, *booking.Booking) {
		svc, _, boats, publisher := newBookingServiceForTest(t)
		bt := newTestBoat(t, 100)
		require.NoError(t, boats.Save(ctx, bt))
		bk, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
		require.NoError(t, err)
		return svc, publisher, bk
	}

	t.Run("confirms a pending booking and publishes the change", func(t *testing.T) {
		svc, publisher, bk := setup(t)

		updated, err := svc.UpdateStatus(ctx, bk.ID(), booking.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status())
		assert.Equal(t, int64(2), updated.Version())

		published := publisher.published()
		require.Len(t, published, 2) // created + status change
		assert.Equal(t, events.BookingStatusChanged, published[1].event.Type)

		var evt events.BookingStatusChangedEvent
		require.NoError(t, published[1].event.ParseData(&evt))
		assert.Equal(t, string(booking.StatusPending), evt.OldStatus)
		assert.Equal(t, string(booking.StatusConfirmed), evt.NewStatus)
	})

	t.Run("rejects transitions out of a terminal status", func(t *testing.T) {
		svc, _, bk := setup(t)

		_, err := svc.UpdateStatus(ctx, bk.ID(), booking.StatusCancelled)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, bk.ID(), booking.StatusCompleted)
		var invalid *domain.InvalidStateError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.UpdateStatus(ctx, uuid.New(), booking.StatusConfirmed)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestMarkBookingPayment(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	bk, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
	require.NoError(t, err)

	require.NoError(t, svc.MarkBookingPayment(ctx, bk.ID(), booking.PaymentPaid))

	got, err := svc.GetBooking(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, got.PaymentStatus())
	assert.Equal(t, booking.StatusPending, got.Status(), "payment must not touch the lifecycle status")
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	_, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
	require.NoError(t, err)

	t.Run("free interval", func(t *testing.T) {
		available, err := svc.CheckAvailability(ctx, bt.ID(), futureDay(20), futureDay(22))
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("booked interval", func(t *testing.T) {
		available, err := svc.CheckAvailability(ctx, bt.ID(), futureDay(11), futureDay(13))
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, bt.ID(), futureDay(5), futureDay(5))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}

func TestAvailableBoats(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)

	busy := newTestBoat(t, 100)
	free := newTestBoat(t, 200)
	require.NoError(t, boats.Save(ctx, busy))
	require.NoError(t, boats.Save(ctx, free))

	_, err := svc.CreateBooking(ctx, validCreateInput(busy.ID()))
	require.NoError(t, err)

	result, err := svc.AvailableBoats(ctx, futureDay(10), futureDay(12))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, free.ID(), result[0].ID())
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	t.Run("month length", func(t *testing.T) {
		slots, err := svc.Calendar(ctx, bt.ID(), time.February, 2028)
		require.NoError(t, err)
		assert.Len(t, slots, 29)
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		_, err := svc.Calendar(ctx, bt.ID(), time.Month(13), 2028)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("unknown boat", func(t *testing.T) {
		_, err := svc.Calendar(ctx, uuid.New(), time.March, 2028)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestNextAvailableDate(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	t.Run("no bookings means today", func(t *testing.T) {
		next, err := svc.NextAvailableDate(ctx, bt.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.Today(), next)
	})

	t.Run("day after the latest booking", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
		require.NoError(t, err)

		next, err := svc.NextAvailableDate(ctx, bt.ID())
		require.NoError(t, err)
		assert.Equal(t, futureDay(13), next)
	})
}

func TestBoatStats(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	bk, err := svc.CreateBooking(ctx, validCreateInput(bt.ID()))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, bk.ID(), booking.StatusConfirmed)
	require.NoError(t, err)

	stats, err := svc.BoatStats(ctx, bt.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 200.0, stats.TotalRevenue)
	assert.Equal(t, 100.0, stats.UtilizationRate)
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	svc, _, boats, _ := newBookingServiceForTest(t)
	bt := newTestBoat(t, 100)
	require.NoError(t, boats.Save(ctx, bt))

	for i := 0; i < 3; i++ {
		in := validCreateInput(bt.ID())
		in.StartDate = futureDay(10 + i*5)
		in.EndDate = futureDay(12 + i*5)
		_, err := svc.CreateBooking(ctx, in)
		require.NoError(t, err)
	}

	result, err := svc.ListBookings(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.Limit)

	t.Run("normalizes out-of-range paging", func(t *testing.T) {
		result, err := svc.ListBookings(ctx, 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 20, result.Limit)
	})
}
