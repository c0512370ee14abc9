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

func newParlorService(t *testing.T) *ParlorService {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	require.NoError(t, userRepo.Create(&models.User{Email: "other@ink.test", Username: "other", Role: models.UserRoleParlorOwner}))
	return NewParlorService(memory.NewParlorRepository(store), userRepo)
}

func TestCreateParlorOwnedByCaller(t *testing.T) {
	svc := newParlorService(t)

	parlor, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{
		Name:      "Black Lotus",
		City:      "Berlin",
		Amenities: []string{"wifi", "private rooms"},
	})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", parlor.OwnerID)
	assert.JSONEq(t, `["wifi","private rooms"]`, string(parlor.Amenities))
}

func TestCreateParlorForOtherOwnerAdminOnly(t *testing.T) {
	svc := newParlorService(t)

	_, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{
		OwnerID: "someone-else",
		Name:    "Not Mine",
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateParlorOwnerOnly(t *testing.T) {
	svc := newParlorService(t)

	parlor, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{Name: "Black Lotus"})
	require.NoError(t, err)

	name := "Renamed"
	_, err = svc.UpdateParlor(parlor.ID, "intruder", models.UserRoleParlorOwner, &dto.UpdateParlorRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := svc.UpdateParlor(parlor.ID, "owner-1", models.UserRoleParlorOwner, &dto.UpdateParlorRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestParlorPromotionFlagsAdminOnly(t *testing.T) {
	svc := newParlorService(t)

	parlor, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{Name: "Black Lotus"})
	require.NoError(t, err)

	sponsored := true
	_, err = svc.UpdateParlor(parlor.ID, "owner-1", models.UserRoleParlorOwner, &dto.UpdateParlorRequest{Sponsored: &sponsored})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := svc.UpdateParlor(parlor.ID, "admin", models.UserRoleAdmin, &dto.UpdateParlorRequest{Sponsored: &sponsored})
	require.NoError(t, err)
	assert.True(t, updated.Sponsored)
}

func TestParlorSearch(t *testing.T) {
	svc := newParlorService(t)

	_, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{Name: "Black Lotus", City: "Berlin"})
	require.NoError(t, err)
	_, err = svc.CreateParlor("owner-2", models.UserRoleParlorOwner, &dto.CreateParlorRequest{Name: "Oslo Ink", City: "Oslo"})
	require.NoError(t, err)

	found, err := svc.Search("lotus", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Black Lotus", found[0].Name)
}

func TestDeleteParlor(t *testing.T) {
	svc := newParlorService(t)

	parlor, err := svc.CreateParlor("owner-1", models.UserRoleParlorOwner, &dto.CreateParlorRequest{Name: "Black Lotus"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteParlor(parlor.ID, "owner-1", models.UserRoleParlorOwner))

	_, err = svc.GetParlor(parlor.ID)
	assert.ErrorIs(t, err, apperrors.ErrParlorNotFound)
}
