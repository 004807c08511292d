package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	bookingDomain "github.com/Hosni10/boatify-server/internal/domain/booking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoatID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerName  string    `gorm:"not null;size:200"`
	CustomerEmail string    `gorm:"not null;size:200"`
	CustomerPhone string    `gorm:"not null;size:50"`
	StartDate     time.Time `gorm:"not null;index:idx_bookings_dates"`
	EndDate       time.Time `gorm:"not null;index:idx_bookings_dates"`
	Guests        int       `gorm:"not null"`
	TotalPrice    float64   `gorm:"not null"`
	Status        string    `gorm:"not null;size:20;index"`
	PaymentStatus string    `gorm:"not null;size:20"`
	Version       int64     `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// ListAll retrieves all bookings with pagination.
func (r *GormBookingRepository) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings, err := toDomainBookings(models)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Snapshot retrieves every stored booking for availability decisions.
func (r *GormBookingRepository) Snapshot(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}
	return toDomainBookings(models)
}

// FindByBoatID retrieves all bookings for one boat.
func (r *GormBookingRepository) FindByBoatID(ctx context.Context, boatID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Where("boat_id = ?", boatID).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by boat ID: %w", err)
	}
	return toDomainBookings(models)
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	if err := r.db.WithContext(ctx).Create(toBookingModel(bk)).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// SaveIfAvailable re-checks the booking's interval against active bookings of
// the same boat inside a transaction and inserts only when no conflict exists.
// This closes the check-then-act window between the caller's snapshot read and
// the insert.
func (r *GormBookingRepository) SaveIfAvailable(ctx context.Context, bk *bookingDomain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts int64
		err := tx.Model(&BookingModel{}).
			Where("boat_id = ?", bk.BoatID()).
			Where("status NOT IN ?", []string{
				string(bookingDomain.StatusCancelled),
				string(bookingDomain.StatusCompleted),
			}).
			Where("start_date < ? AND end_date > ?", bk.EndDate(), bk.StartDate()).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("failed to re-check availability: %w", err)
		}
		if conflicts > 0 {
			return bookingDomain.ErrBoatUnavailable
		}

		if err := tx.Create(toBookingModel(bk)).Error; err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}
		return nil
	})
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before Update).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"payment_status": model.PaymentStatus,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:            bk.ID(),
		BoatID:        bk.BoatID(),
		CustomerID:    bk.CustomerID(),
		CustomerName:  bk.CustomerName(),
		CustomerEmail: bk.CustomerEmail(),
		CustomerPhone: bk.CustomerPhone(),
		StartDate:     bk.StartDate(),
		EndDate:       bk.EndDate(),
		Guests:        bk.Guests(),
		TotalPrice:    bk.TotalPrice(),
		Status:        string(bk.Status()),
		PaymentStatus: string(bk.PaymentStatus()),
		Version:       bk.Version(),
		CreatedAt:     bk.CreatedAt(),
		UpdatedAt:     bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := bookingDomain.ParsePaymentStatus(m.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return bookingDomain.Reconstruct(
		m.ID, m.BoatID, m.CustomerID,
		m.CustomerName, m.CustomerEmail, m.CustomerPhone,
		m.StartDate, m.EndDate,
		m.Guests, m.TotalPrice,
		status, paymentStatus,
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}
