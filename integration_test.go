//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hosni10/boatify-server/internal/application"
	bookingDomain "github.com/Hosni10/boatify-server/internal/domain/booking"
	bookingEvents "github.com/Hosni10/boatify-server/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateBooking_EnforcesAvailability verifies that booking creation prices
// the rental from the stored boat, publishes a creation event, and rejects a
// second booking for overlapping dates while allowing one that only touches
// the boundary day.
func TestCreateBooking_EnforcesAvailability(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.Close()

	ctx := context.Background()
	bt, err := stack.Boats.CreateBoat(ctx, "company_it", application.BoatInput{
		Name:        "Sea Breeze",
		BoatType:    "yacht",
		Capacity:    8,
		PricePerDay: 150,
		Location:    "Marina Bay",
	})
	require.NoError(t, err)

	start := bookingDomain.Today().AddDate(0, 0, 10)
	makeInput := func(startOffset, endOffset int) bookingDomain.CreateInput {
		return bookingDomain.CreateInput{
			BoatID:        bt.ID(),
			CustomerID:    uuid.New(),
			CustomerName:  "Alex Morgan",
			CustomerEmail: "alex@example.com",
			CustomerPhone: "+15550100",
			StartDate:     start.AddDate(0, 0, startOffset),
			EndDate:       start.AddDate(0, 0, endOffset),
			Guests:        4,
		}
	}

	bk, err := stack.Bookings.CreateBooking(ctx, makeInput(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 300.0, bk.TotalPrice())

	// Overlapping interval is rejected by the transactional re-check.
	_, err = stack.Bookings.CreateBooking(ctx, makeInput(1, 3))
	assert.ErrorIs(t, err, bookingDomain.ErrBoatUnavailable)

	// Back-to-back interval sharing the checkout day is fine.
	_, err = stack.Bookings.CreateBooking(ctx, makeInput(2, 4))
	assert.NoError(t, err)

	// The creation event is on the wire.
	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingCreated, 15*time.Second)

	var created bookingEvents.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&created))
	assert.Equal(t, bt.ID(), created.BoatID)
	assert.Equal(t, 300.0, created.TotalPrice)
}

// TestPaymentCompleted_MarksBookingPaid verifies that a payment.completed
// event on payment.events flips the booking's payment status to paid without
// touching its lifecycle status.
func TestPaymentCompleted_MarksBookingPaid(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupServiceStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bt, err := stack.Boats.CreateBoat(ctx, "company_it", application.BoatInput{
		Name:        "Harbor Queen",
		BoatType:    "catamaran",
		Capacity:    12,
		PricePerDay: 200,
	})
	require.NoError(t, err)

	start := bookingDomain.Today().AddDate(0, 0, 5)
	bk, err := stack.Bookings.CreateBooking(ctx, bookingDomain.CreateInput{
		BoatID:        bt.ID(),
		CustomerID:    uuid.New(),
		CustomerName:  "Jamie Lee",
		CustomerEmail: "jamie@example.com",
		CustomerPhone: "+15550101",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
		Guests:        6,
	})
	require.NoError(t, err)

	go func() { _ = stack.Consumer.Start(ctx) }()
	time.Sleep(3 * time.Second) // Wait for consumer group join.

	publishTestEvent(t, infra.KafkaBrokers, bookingEvents.TopicPaymentEvents,
		"payment-frontend", bookingEvents.PaymentCompleted, bk.ID().String(),
		bookingEvents.PaymentEvent{
			PaymentID:  uuid.New(),
			BookingID:  bk.ID(),
			Amount:     bk.TotalPrice(),
			Currency:   "USD",
			OccurredAt: time.Now().UTC(),
		})

	model := waitForPaymentStatus(t, infra.DB, bk.ID(), "paid", 15*time.Second)
	assert.Equal(t, "pending", model.Status, "lifecycle status must be untouched")
	assert.Greater(t, model.Version, int64(1), "payment update must bump the version")
}
