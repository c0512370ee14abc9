package services

import (
	"testing"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories/memory"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtistService(t *testing.T) (*ArtistService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	return NewArtistService(memory.NewArtistRepository(store), memory.NewParlorRepository(store)), store
}

func TestCreateArtistProfile(t *testing.T) {
	svc, _ := newArtistService(t)

	artist, err := svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{
		Name:        "Needle",
		Specialties: []string{"blackwork", "fine line"},
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", artist.UserID)
	assert.JSONEq(t, `["blackwork","fine line"]`, string(artist.Specialties))
}

func TestCreateArtistProfileOncePerUser(t *testing.T) {
	svc, _ := newArtistService(t)

	_, err := svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{Name: "Needle"})
	require.NoError(t, err)

	_, err = svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{Name: "Again"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestUpdateArtistOwnerOnly(t *testing.T) {
	svc, _ := newArtistService(t)

	artist, err := svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{Name: "Needle"})
	require.NoError(t, err)

	name := "Renamed"
	_, err = svc.UpdateArtist(artist.ID, "user-2", models.UserRoleArtist, &dto.UpdateArtistRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := svc.UpdateArtist(artist.ID, "user-1", models.UserRoleArtist, &dto.UpdateArtistRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestArtistPromotionFlagsAdminOnly(t *testing.T) {
	svc, _ := newArtistService(t)

	artist, err := svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{Name: "Needle"})
	require.NoError(t, err)

	featured := true
	_, err = svc.UpdateArtist(artist.ID, "user-1", models.UserRoleArtist, &dto.UpdateArtistRequest{Featured: &featured})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := svc.UpdateArtist(artist.ID, "admin", models.UserRoleAdmin, &dto.UpdateArtistRequest{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, updated.Featured)

	got, err := svc.GetFeatured(0)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestArtistParlorMustExist(t *testing.T) {
	svc, _ := newArtistService(t)

	missing := "no-such-parlor"
	_, err := svc.CreateArtist("user-1", models.UserRoleArtist, &dto.CreateArtistRequest{
		Name:     "Needle",
		ParlorID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrParlorNotFound)
}

func TestArtistSearch(t *testing.T) {
	svc, store := newArtistService(t)

	artistRepo := memory.NewArtistRepository(store)
	require.NoError(t, artistRepo.Create(&models.Artist{UserID: "u1", Name: "Berlin Blackwork", City: "Berlin"}))
	require.NoError(t, artistRepo.Create(&models.Artist{UserID: "u2", Name: "Ink Oslo", City: "Oslo"}))

	found, err := svc.Search("berlin", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Berlin Blackwork", found[0].Name)
}
