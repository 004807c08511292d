package company

import "context"

// ProfileRepository defines persistence operations for company profiles.
type ProfileRepository interface {
	FindByCompanyID(ctx context.Context, companyID string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, companyID string) error
}
