package booking

import (
	"math"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/google/uuid"
)

// ReasonBooked is the calendar reason set on unavailable days.
const ReasonBooked = "boat is booked"

// AvailabilitySlot is one day of a boat's availability calendar.
type AvailabilitySlot struct {
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

// IsBoatAvailable reports whether the boat is free for the candidate interval.
// Intervals are half-open: a booking ending exactly when the candidate starts
// does not conflict. Cancelled and completed bookings never block. The caller
// is responsible for supplying a consistent snapshot and a well-formed
// interval; the function only computes overlap.
func IsBoatAvailable(boatID uuid.UUID, start, end time.Time, bookings []*Booking) bool {
	for _, b := range bookings {
		if b.boatID != boatID {
			continue
		}
		if b.status == StatusCancelled || b.status == StatusCompleted {
			continue
		}
		if start.Before(b.endDate) && end.After(b.startDate) {
			return false
		}
	}
	return true
}

// AvailableBoats filters boats down to those free for the interval,
// preserving input order.
func AvailableBoats(boats []*boat.Boat, start, end time.Time, bookings []*Booking) []*boat.Boat {
	available := make([]*boat.Boat, 0, len(boats))
	for _, bt := range boats {
		if IsBoatAvailable(bt.ID(), start, end, bookings) {
			available = append(available, bt)
		}
	}
	return available
}

// AvailabilityCalendar produces one slot per calendar day of the given month,
// ascending. Each day is checked as the one-day interval [day, day+1).
func AvailabilityCalendar(boatID uuid.UUID, month time.Month, year int, bookings []*Booking) []AvailabilitySlot {
	// Day 0 of the next month normalizes to the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	slots := make([]AvailabilitySlot, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		nextDay := date.AddDate(0, 0, 1)

		slot := AvailabilitySlot{Date: date, Available: IsBoatAvailable(boatID, date, nextDay, bookings)}
		if !slot.Available {
			slot.Reason = ReasonBooked
		}
		slots = append(slots, slot)
	}
	return slots
}

// RentalPrice computes the total price for the interval at the given per-day
// rate. Partial days are billed as full days, so a 36-hour span costs two
// days.
func RentalPrice(pricePerDay float64, start, end time.Time) float64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	return days * pricePerDay
}

// NextAvailableDate returns the earliest date the boat could start a new
// rental: the day after its latest non-cancelled booking ends, but never
// before today.
func NextAvailableDate(boatID uuid.UUID, bookings []*Booking) time.Time {
	today := Today()

	var latestEnd time.Time
	found := false
	for _, b := range bookings {
		if b.boatID != boatID || b.status == StatusCancelled {
			continue
		}
		if !found || b.endDate.After(latestEnd) {
			latestEnd = b.endDate
			found = true
		}
	}
	if !found {
		return today
	}

	next := latestEnd.AddDate(0, 0, 1)
	if next.After(today) {
		return next
	}
	return today
}
