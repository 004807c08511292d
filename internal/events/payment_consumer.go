package events

import (
	"context"

	bookingDomain "github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/Hosni10/boatify-server/internal/kafka"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PaymentMarker applies payment outcomes to bookings. Implemented by the
// booking application service.
type PaymentMarker interface {
	MarkBookingPayment(ctx context.Context, bookingID uuid.UUID, status bookingDomain.PaymentStatus) error
}

// PaymentEventConsumer listens to payment events and updates booking payment
// status. It never touches the booking lifecycle state machine.
type PaymentEventConsumer struct {
	consumer *kafka.Consumer
	marker   PaymentMarker
	logger   *zap.Logger
}

// NewPaymentEventConsumer creates a new PaymentEventConsumer.
func NewPaymentEventConsumer(brokers []string, groupID string, marker PaymentMarker, logger *zap.Logger) *PaymentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicPaymentEvents, logger)
	return &PaymentEventConsumer{
		consumer: consumer,
		marker:   marker,
		logger:   logger,
	}
}

// Start begins consuming payment events. This blocks until the context is cancelled.
func (c *PaymentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *PaymentEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *PaymentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from payment topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case PaymentCompleted:
		return c.applyPayment(ctx, cloudEvent, bookingDomain.PaymentPaid)
	case PaymentRefunded:
		return c.applyPayment(ctx, cloudEvent, bookingDomain.PaymentRefunded)
	default:
		c.logger.Debug("ignoring unhandled payment event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *PaymentEventConsumer) applyPayment(ctx context.Context, cloudEvent kafka.CloudEvent, status bookingDomain.PaymentStatus) error {
	var evt PaymentEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse payment event data", zap.Error(err))
		return nil // Don't retry malformed data
	}

	if err := c.marker.MarkBookingPayment(ctx, evt.BookingID, status); err != nil {
		c.logger.Error("failed to update booking payment status",
			zap.String("booking_id", evt.BookingID.String()),
			zap.String("payment_status", string(status)),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("booking payment status updated",
		zap.String("booking_id", evt.BookingID.String()),
		zap.String("payment_status", string(status)),
	)
	return nil
}
