package application

import (
	"context"

	"github.com/Hosni10/boatify-server/internal/domain/boat"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BoatInput holds the listing fields accepted on create and update.
type BoatInput struct {
	Name        string
	BoatType    string
	Capacity    int
	PricePerDay float64
	Location    string
	Status      boat.BoatStatus
	Features    []string
	ImageURL    string
}

// BoatService manages boat listings.
type BoatService struct {
	boats  boat.BoatRepository
	logger *zap.Logger
}

// NewBoatService creates a new BoatService.
func NewBoatService(boats boat.BoatRepository, logger *zap.Logger) *BoatService {
	return &BoatService{boats: boats, logger: logger}
}

// CreateBoat creates a new listing for the company.
func (s *BoatService) CreateBoat(ctx context.Context, companyID string, in BoatInput) (*boat.Boat, error) {
	b, err := boat.NewBoat(companyID, in.Name, in.BoatType, in.Capacity, in.PricePerDay, in.Location, in.Features, in.ImageURL)
	if err != nil {
		return nil, err
	}
	if err := s.boats.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("boat created",
		zap.String("boat_id", b.ID().String()),
		zap.String("company_id", companyID),
	)
	return b, nil
}

// GetBoat retrieves one boat.
func (s *BoatService) GetBoat(ctx context.Context, id uuid.UUID) (*boat.Boat, error) {
	return s.boats.FindByID(ctx, id)
}

// ListBoats retrieves all boats.
func (s *BoatService) ListBoats(ctx context.Context) ([]*boat.Boat, error) {
	return s.boats.ListAll(ctx)
}

// ListCompanyBoats retrieves the company's boats.
func (s *BoatService) ListCompanyBoats(ctx context.Context, companyID string) ([]*boat.Boat, error) {
	return s.boats.FindByCompanyID(ctx, companyID)
}

// UpdateBoat replaces the mutable listing fields.
func (s *BoatService) UpdateBoat(ctx context.Context, id uuid.UUID, in BoatInput) (*boat.Boat, error) {
	b, err := s.boats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = b.Status()
	}
	if err := b.UpdateDetails(in.Name, in.BoatType, in.Capacity, in.PricePerDay, in.Location, status, in.Features, in.ImageURL); err != nil {
		return nil, err
	}
	if err := s.boats.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBoat removes a listing.
func (s *BoatService) DeleteBoat(ctx context.Context, id uuid.UUID) error {
	if err := s.boats.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("boat deleted", zap.String("boat_id", id.String()))
	return nil
}
