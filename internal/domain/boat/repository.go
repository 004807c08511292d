package boat

import (
	"context"

	"github.com/google/uuid"
)

// BoatRepository defines persistence operations for boats.
type BoatRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Boat, error)
	ListAll(ctx context.Context) ([]*Boat, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]*Boat, error)
	Save(ctx context.Context, b *Boat) error
	Update(ctx context.Context, b *Boat) error
	Delete(ctx context.Context, id uuid.UUID) error
}
