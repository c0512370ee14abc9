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

type reviewFixture struct {
	store      *memory.Store
	service    *ReviewService
	artistRepo *memory.ArtistRepository
	parlorRepo *memory.ParlorRepository

	artistID string
	parlorID string
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	store := memory.NewStore()
	artistRepo := memory.NewArtistRepository(store)
	parlorRepo := memory.NewParlorRepository(store)

	f := &reviewFixture{
		store:      store,
		artistRepo: artistRepo,
		parlorRepo: parlorRepo,
		service: NewReviewService(
			memory.NewReviewRepository(store),
			artistRepo,
			parlorRepo,
		),
	}

	artist := &models.Artist{UserID: "artist-user", Name: "Needle"}
	require.NoError(t, artistRepo.Create(artist))
	f.artistID = artist.ID

	parlor := &models.Parlor{OwnerID: "owner-user", Name: "Black Lotus"}
	require.NoError(t, parlorRepo.Create(parlor))
	f.parlorID = parlor.ID

	return f
}

func (f *reviewFixture) review(t *testing.T, userID string, rating int) *models.Review {
	t.Helper()

	review, err := f.service.CreateReview(userID, &dto.CreateReviewRequest{
		TargetID:   f.artistID,
		TargetType: models.TargetTypeArtist,
		Rating:     rating,
	})
	require.NoError(t, err)
	return review
}

func (f *reviewFixture) artistRating(t *testing.T) (float64, int64) {
	t.Helper()

	artist, err := f.artistRepo.FindByID(f.artistID)
	require.NoError(t, err)
	return artist.Rating, artist.ReviewCount
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	f := newReviewFixture(t)

	f.review(t, "u1", 5)
	f.review(t, "u2", 4)
	f.review(t, "u3", 3)

	rating, count := f.artistRating(t)
	assert.Equal(t, 4.0, rating)
	assert.Equal(t, int64(3), count)
}

func TestRatingRoundsToOneDecimal(t *testing.T) {
	f := newReviewFixture(t)

	f.review(t, "u1", 5)
	f.review(t, "u2", 4)
	f.review(t, "u3", 4)

	rating, count := f.artistRating(t)
	assert.Equal(t, 4.3, rating)
	assert.Equal(t, int64(3), count)
}

func TestDeleteReviewRecomputesRating(t *testing.T) {
	f := newReviewFixture(t)

	f.review(t, "u1", 5)
	f.review(t, "u2", 4)
	victim := f.review(t, "u3", 3)

	require.NoError(t, f.service.DeleteReview(victim.ID, "u3", models.UserRoleUser))

	rating, count := f.artistRating(t)
	assert.Equal(t, 4.5, rating)
	assert.Equal(t, int64(2), count)
}

func TestDeleteLastReviewZeroesAggregate(t *testing.T) {
	f := newReviewFixture(t)

	only := f.review(t, "u1", 5)
	require.NoError(t, f.service.DeleteReview(only.ID, "u1", models.UserRoleUser))

	rating, count := f.artistRating(t)
	assert.Equal(t, 0.0, rating)
	assert.Equal(t, int64(0), count)
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	f := newReviewFixture(t)

	review := f.review(t, "u1", 2)
	f.review(t, "u2", 4)

	newRating := 5
	_, err := f.service.UpdateReview(review.ID, "u1", models.UserRoleUser, &dto.UpdateReviewRequest{
		Rating: &newRating,
	})
	require.NoError(t, err)

	rating, count := f.artistRating(t)
	assert.Equal(t, 4.5, rating)
	assert.Equal(t, int64(2), count)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	f := newReviewFixture(t)

	f.review(t, "u1", 5)
	f.review(t, "u2", 4)

	first, firstCount := f.artistRating(t)

	// Touch a review without changing anything; the aggregate must not
	// drift.
	title := "still great"
	_, err := f.service.UpdateReview(
		mustFirstReview(t, f), "u1", models.UserRoleAdmin,
		&dto.UpdateReviewRequest{Title: &title},
	)
	require.NoError(t, err)

	again, againCount := f.artistRating(t)
	assert.Equal(t, first, again)
	assert.Equal(t, firstCount, againCount)
}

func mustFirstReview(t *testing.T, f *reviewFixture) string {
	t.Helper()

	reviews, err := f.service.GetUserReviews("u1")
	require.NoError(t, err)
	require.NotEmpty(t, reviews)
	return reviews[0].ID
}

func TestDuplicateReviewRejected(t *testing.T) {
	f := newReviewFixture(t)

	f.review(t, "u1", 5)
	_, err := f.service.CreateReview("u1", &dto.CreateReviewRequest{
		TargetID:   f.artistID,
		TargetType: models.TargetTypeArtist,
		Rating:     3,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)

	// The same author may still review a different target.
	_, err = f.service.CreateReview("u1", &dto.CreateReviewRequest{
		TargetID:   f.parlorID,
		TargetType: models.TargetTypeParlor,
		Rating:     4,
	})
	assert.NoError(t, err)
}

func TestReviewTargetMustExist(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.CreateReview("u1", &dto.CreateReviewRequest{
		TargetID:   "missing",
		TargetType: models.TargetTypeArtist,
		Rating:     5,
	})
	assert.ErrorIs(t, err, apperrors.ErrArtistNotFound)

	_, err = f.service.CreateReview("u1", &dto.CreateReviewRequest{
		TargetID:   "missing",
		TargetType: models.TargetTypeParlor,
		Rating:     5,
	})
	assert.ErrorIs(t, err, apperrors.ErrParlorNotFound)
}

func TestUpdateReviewRestrictedFields(t *testing.T) {
	f := newReviewFixture(t)
	review := f.review(t, "u1", 4)

	other := "other-target"
	_, err := f.service.UpdateReview(review.ID, "u1", models.UserRoleUser, &dto.UpdateReviewRequest{
		TargetID: &other,
	})
	assert.ErrorIs(t, err, apperrors.ErrReviewFieldsImmutable)
}

func TestUpdateReviewAuthorOrAdminOnly(t *testing.T) {
	f := newReviewFixture(t)
	review := f.review(t, "u1", 4)

	newRating := 1
	_, err := f.service.UpdateReview(review.ID, "u2", models.UserRoleUser, &dto.UpdateReviewRequest{
		Rating: &newRating,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = f.service.UpdateReview(review.ID, "u2", models.UserRoleAdmin, &dto.UpdateReviewRequest{
		Rating: &newRating,
	})
	assert.NoError(t, err)
}

func TestGetUserReviewsEnrichesTargetName(t *testing.T) {
	f := newReviewFixture(t)
	f.review(t, "u1", 5)

	reviews, err := f.service.GetUserReviews("u1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Needle", reviews[0].TargetName)
}

func TestGetTargetRatingLiveAggregate(t *testing.T) {
	f := newReviewFixture(t)
	f.review(t, "u1", 2)
	f.review(t, "u2", 5)

	agg, err := f.service.GetTargetRating(f.artistID, models.TargetTypeArtist)
	require.NoError(t, err)
	assert.Equal(t, 3.5, agg.Rating)
	assert.Equal(t, int64(2), agg.Count)
}
