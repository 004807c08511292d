package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	paymentDomain "github.com/Hosni10/boatify-server/internal/domain/payment"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel is the GORM model for the payments table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount        float64   `gorm:"not null"`
	Currency      string    `gorm:"not null;size:10"`
	State         string    `gorm:"not null;size:20"`
	PaymentMethod string    `gorm:"not null;size:50"`
	TransactionID string    `gorm:"size:100"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PaymentModel) TableName() string {
	return "payments"
}

// GormPaymentRepository is the GORM-based implementation of PaymentRepository.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID retrieves a payment by its unique identifier.
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*paymentDomain.Payment, error) {
	var model PaymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Payment", id.String())
		}
		return nil, fmt.Errorf("failed to find payment by ID: %w", err)
	}
	return toDomainPayment(&model), nil
}

// ListAll retrieves all payments with pagination.
func (r *GormPaymentRepository) ListAll(ctx context.Context, page, limit int) ([]*paymentDomain.Payment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&PaymentModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	var models []PaymentModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*paymentDomain.Payment, len(models))
	for i, m := range models {
		payments[i] = toDomainPayment(&m)
	}
	return payments, total, nil
}

// FindByBookingID retrieves all payments recorded against one booking.
func (r *GormPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*paymentDomain.Payment, error) {
	var models []PaymentModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find payments by booking ID: %w", err)
	}
	payments := make([]*paymentDomain.Payment, len(models))
	for i, m := range models {
		payments[i] = toDomainPayment(&m)
	}
	return payments, nil
}

// Save persists a new payment record.
func (r *GormPaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	if err := r.db.WithContext(ctx).Create(toPaymentModel(p)).Error; err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

// Update persists changes to an existing payment.
func (r *GormPaymentRepository) Update(ctx context.Context, p *paymentDomain.Payment) error {
	model := toPaymentModel(p)
	result := r.db.WithContext(ctx).Model(&PaymentModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"state":      model.State,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Payment", model.ID.String())
	}
	return nil
}

func toPaymentModel(p *paymentDomain.Payment) *PaymentModel {
	return &PaymentModel{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		State:         string(p.State()),
		PaymentMethod: p.PaymentMethod(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toDomainPayment(m *PaymentModel) *paymentDomain.Payment {
	return paymentDomain.Reconstruct(
		m.ID, m.BookingID,
		m.Amount, m.Currency,
		paymentDomain.PaymentState(m.State),
		m.PaymentMethod, m.TransactionID,
		m.CreatedAt, m.UpdatedAt,
	)
}
