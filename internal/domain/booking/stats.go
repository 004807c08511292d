package booking

import (
	"math"

	"github.com/google/uuid"
)

// BookingStats aggregates booking activity for one boat.
type BookingStats struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	UtilizationRate   float64 `json:"utilization_rate"`
}

// Stats computes aggregate statistics over the boat's bookings. Revenue sums
// the total price of confirmed and completed bookings; the utilization rate
// is the percentage of bookings that were not cancelled, 0 when there are
// none.
func Stats(boatID uuid.UUID, bookings []*Booking) BookingStats {
	var stats BookingStats
	nonCancelled := 0

	for _, b := range bookings {
		if b.boatID != boatID {
			continue
		}
		stats.TotalBookings++
		switch b.status {
		case StatusConfirmed:
			stats.ConfirmedBookings++
			stats.TotalRevenue += b.totalPrice
		case StatusCompleted:
			stats.CompletedBookings++
			stats.TotalRevenue += b.totalPrice
		case StatusCancelled:
			stats.CancelledBookings++
		}
		if b.status != StatusCancelled {
			nonCancelled++
		}
	}

	if stats.TotalBookings > 0 {
		rate := float64(nonCancelled) / float64(stats.TotalBookings) * 100
		stats.UtilizationRate = math.Round(rate*100) / 100
	}
	return stats
}
