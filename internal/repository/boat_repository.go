package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	boatDomain "github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoatModel is the GORM model for the boats table. Features are stored as a
// JSONB array.
type BoatModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   string          `gorm:"not null;size:100;index"`
	Name        string          `gorm:"not null;size:200"`
	BoatType    string          `gorm:"not null;size:100"`
	Capacity    int             `gorm:"not null"`
	PricePerDay float64         `gorm:"not null"`
	Location    string          `gorm:"size:200"`
	Status      string          `gorm:"not null;size:20"`
	Features    json.RawMessage `gorm:"type:jsonb"`
	ImageURL    string          `gorm:"size:500"`
	Rating      float64         `gorm:"not null;default:0"`
	ReviewCount int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BoatModel) TableName() string {
	return "boats"
}

// GormBoatRepository is the GORM-based implementation of BoatRepository.
type GormBoatRepository struct {
	db *gorm.DB
}

// NewGormBoatRepository creates a new GormBoatRepository.
func NewGormBoatRepository(db *gorm.DB) *GormBoatRepository {
	return &GormBoatRepository{db: db}
}

// FindByID retrieves a boat by its unique identifier.
func (r *GormBoatRepository) FindByID(ctx context.Context, id uuid.UUID) (*boatDomain.Boat, error) {
	var model BoatModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Boat", id.String())
		}
		return nil, fmt.Errorf("failed to find boat by ID: %w", err)
	}
	return toDomainBoat(&model)
}

// ListAll retrieves all boats.
func (r *GormBoatRepository) ListAll(ctx context.Context) ([]*boatDomain.Boat, error) {
	var models []BoatModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}
	return toDomainBoats(models)
}

// FindByCompanyID retrieves all boats belonging to one company.
func (r *GormBoatRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*boatDomain.Boat, error) {
	var models []BoatModel
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find boats by company ID: %w", err)
	}
	return toDomainBoats(models)
}

// Save persists a new boat.
func (r *GormBoatRepository) Save(ctx context.Context, b *boatDomain.Boat) error {
	model, err := toBoatModel(b)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save boat: %w", err)
	}
	return nil
}

// Update persists changes to an existing boat.
func (r *GormBoatRepository) Update(ctx context.Context, b *boatDomain.Boat) error {
	model, err := toBoatModel(b)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&BoatModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":          model.Name,
		"boat_type":     model.BoatType,
		"capacity":      model.Capacity,
		"price_per_day": model.PricePerDay,
		"location":      model.Location,
		"status":        model.Status,
		"features":      model.Features,
		"image_url":     model.ImageURL,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update boat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Boat", model.ID.String())
	}
	return nil
}

// Delete removes a boat.
func (r *GormBoatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BoatModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete boat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Boat", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toBoatModel(b *boatDomain.Boat) (*BoatModel, error) {
	features, err := json.Marshal(b.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal boat features: %w", err)
	}
	return &BoatModel{
		ID:          b.ID(),
		CompanyID:   b.CompanyID(),
		Name:        b.Name(),
		BoatType:    b.BoatType(),
		Capacity:    b.Capacity(),
		PricePerDay: b.PricePerDay(),
		Location:    b.Location(),
		Status:      string(b.Status()),
		Features:    features,
		ImageURL:    b.ImageURL(),
		Rating:      b.Rating(),
		ReviewCount: b.ReviewCount(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}, nil
}

func toDomainBoat(m *BoatModel) (*boatDomain.Boat, error) {
	var features []string
	if len(m.Features) > 0 {
		if err := json.Unmarshal(m.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal boat features: %w", err)
		}
	}
	return boatDomain.Reconstruct(
		m.ID,
		m.CompanyID, m.Name, m.BoatType,
		m.Capacity, m.PricePerDay,
		m.Location,
		boatDomain.BoatStatus(m.Status),
		features,
		m.ImageURL,
		m.Rating, m.ReviewCount,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

func toDomainBoats(models []BoatModel) ([]*boatDomain.Boat, error) {
	boats := make([]*boatDomain.Boat, len(models))
	for i, m := range models {
		b, err := toDomainBoat(&m)
		if err != nil {
			return nil, err
		}
		boats[i] = b
	}
	return boats, nil
}
