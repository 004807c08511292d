package company

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/google/uuid"
)

// ProfileDetails holds the mutable, free-form part of a company profile.
type ProfileDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
}

// Profile is the aggregate root for a rental company's public profile,
// keyed by the company identifier tag carried on users and boats.
type Profile struct {
	id        uuid.UUID
	companyID string
	details   ProfileDetails
	createdAt time.Time
	updatedAt time.Time
}

// NewProfile creates a new company profile.
func NewProfile(companyID string, details ProfileDetails) (*Profile, error) {
	if companyID == "" {
		return nil, domain.NewValidationError("company ID is required")
	}

	now := time.Now().UTC()
	return &Profile{
		id:        uuid.New(),
		companyID: companyID,
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Profile from persistence data (no validation).
func Reconstruct(id uuid.UUID, companyID string, details ProfileDetails, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		id:        id,
		companyID: companyID,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters.
func (p *Profile) ID() uuid.UUID           { return p.id }
func (p *Profile) CompanyID() string       { return p.companyID }
func (p *Profile) Details() ProfileDetails { return p.details }
func (p *Profile) CreatedAt() time.Time    { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time    { return p.updatedAt }

// UpdateDetails replaces the profile details.
func (p *Profile) UpdateDetails(details ProfileDetails) {
	p.details = details
	p.updatedAt = time.Now().UTC()
}
