package boat

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/google/uuid"
)

// BoatStatus represents the operational state of a boat.
type BoatStatus string

const (
	StatusAvailable   BoatStatus = "available"
	StatusRented      BoatStatus = "rented"
	StatusMaintenance BoatStatus = "maintenance"
)

// IsValid returns true if the boat status is recognized.
func (s BoatStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	}
	return false
}

// Boat is the aggregate root for a rentable boat.
type Boat struct {
	id          uuid.UUID
	companyID   string
	name        string
	boatType    string
	capacity    int
	pricePerDay float64
	location    string
	status      BoatStatus
	features    []string
	imageURL    string
	rating      float64
	reviewCount int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBoat creates a new boat listing with status=available.
func NewBoat(
	companyID, name, boatType string,
	capacity int,
	pricePerDay float64,
	location string,
	features []string,
	imageURL string,
) (*Boat, error) {
	if companyID == "" {
		return nil, domain.NewValidationError("company ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("boat name is required")
	}
	if boatType == "" {
		return nil, domain.NewValidationError("boat type is required")
	}
	if pricePerDay < 0 {
		return nil, domain.NewValidationError("price per day cannot be negative")
	}

	now := time.Now().UTC()
	return &Boat{
		id:          uuid.New(),
		companyID:   companyID,
		name:        name,
		boatType:    boatType,
		capacity:    capacity,
		pricePerDay: pricePerDay,
		location:    location,
		status:      StatusAvailable,
		features:    features,
		imageURL:    imageURL,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Boat from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	companyID, name, boatType string,
	capacity int,
	pricePerDay float64,
	location string,
	status BoatStatus,
	features []string,
	imageURL string,
	rating float64,
	reviewCount int,
	createdAt, updatedAt time.Time,
) *Boat {
	return &Boat{
		id:          id,
		companyID:   companyID,
		name:        name,
		boatType:    boatType,
		capacity:    capacity,
		pricePerDay: pricePerDay,
		location:    location,
		status:      status,
		features:    features,
		imageURL:    imageURL,
		rating:      rating,
		reviewCount: reviewCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters.
func (b *Boat) ID() uuid.UUID        { return b.id }
func (b *Boat) CompanyID() string    { return b.companyID }
func (b *Boat) Name() string         { return b.name }
func (b *Boat) BoatType() string     { return b.boatType }
func (b *Boat) Capacity() int        { return b.capacity }
func (b *Boat) PricePerDay() float64 { return b.pricePerDay }
func (b *Boat) Location() string     { return b.location }
func (b *Boat) Status() BoatStatus   { return b.status }
func (b *Boat) Features() []string   { return b.features }
func (b *Boat) ImageURL() string     { return b.imageURL }
func (b *Boat) Rating() float64      { return b.rating }
func (b *Boat) ReviewCount() int     { return b.reviewCount }
func (b *Boat) CreatedAt() time.Time { return b.createdAt }
func (b *Boat) UpdatedAt() time.Time { return b.updatedAt }

// UpdateDetails replaces the mutable listing fields.
func (b *Boat) UpdateDetails(
	name, boatType string,
	capacity int,
	pricePerDay float64,
	location string,
	status BoatStatus,
	features []string,
	imageURL string,
) error {
	if name == "" {
		return domain.NewValidationError("boat name is required")
	}
	if pricePerDay < 0 {
		return domain.NewValidationError("price per day cannot be negative")
	}
	if !status.IsValid() {
		return domain.NewValidationError("invalid boat status: " + string(status))
	}
	b.name = name
	b.boatType = boatType
	b.capacity = capacity
	b.pricePerDay = pricePerDay
	b.location = location
	b.status = status
	b.features = features
	b.imageURL = imageURL
	b.updatedAt = time.Now().UTC()
	return nil
}
