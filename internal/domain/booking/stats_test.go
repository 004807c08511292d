package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	boatID := uuid.New()
	start, end := day(2030, time.June, 1), day(2030, time.June, 3)

	t.Run("empty set yields zero utilization", func(t *testing.T) {
		stats := Stats(boatID, nil)
		assert.Zero(t, stats.TotalBookings)
		assert.Zero(t, stats.TotalRevenue)
		assert.Zero(t, stats.UtilizationRate)
	})

	t.Run("revenue over confirmed and completed only", func(t *testing.T) {
		bookings := []*Booking{
			seedBooking(boatID, StatusCompleted, start, end, 100),
			seedBooking(boatID, StatusCancelled, start, end, 50),
			seedBooking(boatID, StatusConfirmed, start, end, 200),
		}

		stats := Stats(boatID, bookings)
		assert.Equal(t, 3, stats.TotalBookings)
		assert.Equal(t, 1, stats.ConfirmedBookings)
		assert.Equal(t, 1, stats.CompletedBookings)
		assert.Equal(t, 1, stats.CancelledBookings)
		assert.Equal(t, 300.0, stats.TotalRevenue)
		assert.Equal(t, 66.67, stats.UtilizationRate)
	})

	t.Run("pending bookings count toward utilization but not revenue", func(t *testing.T) {
		bookings := []*Booking{
			seedBooking(boatID, StatusPending, start, end, 500),
		}

		stats := Stats(boatID, bookings)
		assert.Equal(t, 1, stats.TotalBookings)
		assert.Zero(t, stats.TotalRevenue)
		assert.Equal(t, 100.0, stats.UtilizationRate)
	})

	t.Run("other boats are excluded", func(t *testing.T) {
		bookings := []*Booking{
			seedBooking(uuid.New(), StatusConfirmed, start, end, 999),
		}
		assert.Zero(t, Stats(boatID, bookings).TotalBookings)
	})
}
