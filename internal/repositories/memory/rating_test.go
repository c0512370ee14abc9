package memory

import (
	"testing"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistUpdateRating(t *testing.T) {
	store := NewStore()
	repo := NewArtistRepository(store)

	artist := &models.Artist{UserID: "u1", Name: "Needle"}
	require.NoError(t, repo.Create(artist))

	require.NoError(t, repo.UpdateRating(artist.ID, 4.3, 3))

	got, err := repo.FindByID(artist.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, got.Rating)
	assert.Equal(t, int64(3), got.ReviewCount)

	assert.ErrorIs(t, repo.UpdateRating("missing", 5, 1), repositories.ErrArtistNotFound)
}

func TestParlorUpdateRating(t *testing.T) {
	store := NewStore()
	repo := NewParlorRepository(store)

	parlor := &models.Parlor{OwnerID: "u1", Name: "Black Lotus"}
	require.NoError(t, repo.Create(parlor))

	require.NoError(t, repo.UpdateRating(parlor.ID, 3.5, 2))

	got, err := repo.FindByID(parlor.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.Rating)
	assert.Equal(t, int64(2), got.ReviewCount)

	assert.ErrorIs(t, repo.UpdateRating("missing", 5, 1), repositories.ErrParlorNotFound)
}
