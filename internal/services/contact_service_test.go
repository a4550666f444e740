package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewise/stablewise-backend/internal/models"
)

type fakeDirectory struct {
	listing    *models.Listing
	listingErr error
	profile    *models.Profile
	profileErr error

	profileCalls int
}

func (f *fakeDirectory) ActiveListing(ctx context.Context, animalID string) (*models.Listing, error) {
	return f.listing, f.listingErr
}

func (f *fakeDirectory) SellerProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func TestResolveContact(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("should prefer the listing's explicit contact", func(t *testing.T) {
		contact := "owner@stable.example"
		email := "profile@stable.example"
		dir := &fakeDirectory{
			listing: &models.Listing{SellerID: sellerID, ContactInfo: &contact},
			profile: &models.Profile{UserID: sellerID, ContactEmail: &email},
		}

		got, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		require.NoError(t, err)
		assert.Equal(t, "owner@stable.example", got)
		assert.Zero(t, dir.profileCalls, "profile lookup should be skipped")
	})

	t.Run("should fall back to the seller profile email", func(t *testing.T) {
		email := "profile@stable.example"
		dir := &fakeDirectory{
			listing: &models.Listing{SellerID: sellerID},
			profile: &models.Profile{UserID: sellerID, ContactEmail: &email},
		}

		got, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		require.NoError(t, err)
		assert.Equal(t, "profile@stable.example", got)
	})

	t.Run("should treat an empty contact string as absent", func(t *testing.T) {
		empty := ""
		email := "profile@stable.example"
		dir := &fakeDirectory{
			listing: &models.Listing{SellerID: sellerID, ContactInfo: &empty},
			profile: &models.Profile{UserID: sellerID, ContactEmail: &email},
		}

		got, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		require.NoError(t, err)
		assert.Equal(t, "profile@stable.example", got)
	})

	t.Run("should report no contact when there is no active listing", func(t *testing.T) {
		dir := &fakeDirectory{}
		_, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		assert.ErrorIs(t, err, ErrNoContact)
	})

	t.Run("should report no contact when the profile has no email", func(t *testing.T) {
		dir := &fakeDirectory{
			listing: &models.Listing{SellerID: sellerID},
			profile: &models.Profile{UserID: sellerID},
		}
		_, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		assert.ErrorIs(t, err, ErrNoContact)
	})

	t.Run("should report no contact when the profile is missing entirely", func(t *testing.T) {
		dir := &fakeDirectory{listing: &models.Listing{SellerID: sellerID}}
		_, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		assert.ErrorIs(t, err, ErrNoContact)
	})

	t.Run("should surface lookup failures as-is", func(t *testing.T) {
		boom := errors.New("connection refused")
		dir := &fakeDirectory{listingErr: boom}
		_, err := NewContactService(dir).ResolveContact(ctx, "some-animal")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNoContact)
	})
}
