package application

import (
	"context"
	"errors"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/company"
	"go.uber.org/zap"
)

// CompanyService manages company profiles.
type CompanyService struct {
	profiles company.ProfileRepository
	logger   *zap.Logger
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(profiles company.ProfileRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{profiles: profiles, logger: logger}
}

// GetProfile retrieves the company's profile.
func (s *CompanyService) GetProfile(ctx context.Context, companyID string) (*company.Profile, error) {
	return s.profiles.FindByCompanyID(ctx, companyID)
}

// UpsertProfile creates the profile if it does not exist, otherwise replaces
// its details.
func (s *CompanyService) UpsertProfile(ctx context.Context, companyID string, details company.ProfileDetails) (*company.Profile, error) {
	existing, err := s.profiles.FindByCompanyID(ctx, companyID)
	if err != nil {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}

		p, err := company.NewProfile(companyID, details)
		if err != nil {
			return nil, err
		}
		if err := s.profiles.Save(ctx, p); err != nil {
			return nil, err
		}
		s.logger.Info("company profile created", zap.String("company_id", companyID))
		return p, nil
	}

	existing.UpdateDetails(details)
	if err := s.profiles.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// ReplaceProfile updates an existing profile; missing profiles are an error.
func (s *CompanyService) ReplaceProfile(ctx context.Context, companyID string, details company.ProfileDetails) (*company.Profile, error) {
	p, err := s.profiles.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	p.UpdateDetails(details)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProfile removes the company's profile.
func (s *CompanyService) DeleteProfile(ctx context.Context, companyID string) error {
	return s.profiles.Delete(ctx, companyID)
}
