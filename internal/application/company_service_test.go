package application

import (
	"context"
	"testing"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompanyProfile(t *testing.T) {
	ctx := context.Background()
	details := company.ProfileDetails{
		Name:  "Harbor Rentals",
		Email: "info@harbor.example.com",
		Phone: "+15550100",
	}

	t.Run("upsert creates then updates", func(t *testing.T) {
		svc := NewCompanyService(newFakeProfileRepo(), zap.NewNop())

		created, err := svc.UpsertProfile(ctx, "company_1", details)
		require.NoError(t, err)
		assert.Equal(t, "Harbor Rentals", created.Details().Name)

		updated := details
		updated.Name = "Harbor Rentals LLC"
		p, err := svc.UpsertProfile(ctx, "company_1", updated)
		require.NoError(t, err)
		assert.Equal(t, created.ID(), p.ID(), "upsert must not create a second profile")
		assert.Equal(t, "Harbor Rentals LLC", p.Details().Name)
	})

	t.Run("replace requires an existing profile", func(t *testing.T) {
		svc := NewCompanyService(newFakeProfileRepo(), zap.NewNop())

		_, err := svc.ReplaceProfile(ctx, "company_missing", details)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("delete removes the profile", func(t *testing.T) {
		svc := NewCompanyService(newFakeProfileRepo(), zap.NewNop())

		_, err := svc.UpsertProfile(ctx, "company_1", details)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteProfile(ctx, "company_1"))

		_, err = svc.GetProfile(ctx, "company_1")
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
