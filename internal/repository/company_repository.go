package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	companyDomain "github.com/Hosni10/boatify-server/internal/domain/company"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfileModel is the GORM model for the company_profiles table. The
// free-form details blob is stored as JSONB.
type CompanyProfileModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID string          `gorm:"not null;size:100;uniqueIndex"`
	Details   json.RawMessage `gorm:"type:jsonb"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CompanyProfileModel) TableName() string {
	return "company_profiles"
}

// GormCompanyRepository is the GORM-based implementation of ProfileRepository.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository.
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByCompanyID retrieves a company profile by company identifier.
func (r *GormCompanyRepository) FindByCompanyID(ctx context.Context, companyID string) (*companyDomain.Profile, error) {
	var model CompanyProfileModel
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("CompanyProfile", companyID)
		}
		return nil, fmt.Errorf("failed to find company profile: %w", err)
	}
	return toDomainProfile(&model)
}

// Save persists a new company profile.
func (r *GormCompanyRepository) Save(ctx context.Context, p *companyDomain.Profile) error {
	model, err := toProfileModel(p)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company profile: %w", err)
	}
	return nil
}

// Update persists changes to an existing company profile.
func (r *GormCompanyRepository) Update(ctx context.Context, p *companyDomain.Profile) error {
	model, err := toProfileModel(p)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&CompanyProfileModel{}).
		Where("company_id = ?", model.CompanyID).
		Updates(map[string]interface{}{
			"details":    model.Details,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update company profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("CompanyProfile", model.CompanyID)
	}
	return nil
}

// Delete removes a company profile.
func (r *GormCompanyRepository) Delete(ctx context.Context, companyID string) error {
	result := r.db.WithContext(ctx).Where("company_id = ?", companyID).Delete(&CompanyProfileModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete company profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("CompanyProfile", companyID)
	}
	return nil
}

func toProfileModel(p *companyDomain.Profile) (*CompanyProfileModel, error) {
	details, err := json.Marshal(p.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile details: %w", err)
	}
	return &CompanyProfileModel{
		ID:        p.ID(),
		CompanyID: p.CompanyID(),
		Details:   details,
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}, nil
}

func toDomainProfile(m *CompanyProfileModel) (*companyDomain.Profile, error) {
	var details companyDomain.ProfileDetails
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile details: %w", err)
		}
	}
	return companyDomain.Reconstruct(m.ID, m.CompanyID, details, m.CreatedAt, m.UpdatedAt), nil
}
