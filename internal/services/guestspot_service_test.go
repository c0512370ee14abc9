package services

import (
	"testing"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/repositories/memory"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestspotFixture struct {
	store   *memory.Store
	service *GuestspotService

	ownerID  string
	parlorID string

	artistUserID string
	artistID     string
}

func newGuestspotFixture(t *testing.T) *guestspotFixture {
	t.Helper()

	store := memory.NewStore()
	guestspotRepo := memory.NewGuestspotRepository(store)
	parlorRepo := memory.NewParlorRepository(store)
	artistRepo := memory.NewArtistRepository(store)

	f := &guestspotFixture{
		store:   store,
		service: NewGuestspotService(guestspotRepo, parlorRepo, artistRepo),
	}

	owner := &models.User{Email: "owner@ink.test", Username: "owner", Role: models.UserRoleParlorOwner}
	require.NoError(t, memory.NewUserRepository(store).Create(owner))
	f.ownerID = owner.ID

	parlor := &models.Parlor{OwnerID: owner.ID, Name: "Black Lotus"}
	require.NoError(t, parlorRepo.Create(parlor))
	f.parlorID = parlor.ID

	artistUser := &models.User{Email: "artist@ink.test", Username: "needle", Role: models.UserRoleArtist}
	require.NoError(t, memory.NewUserRepository(store).Create(artistUser))
	f.artistUserID = artistUser.ID

	artist := &models.Artist{UserID: artistUser.ID, Name: "Needle"}
	require.NoError(t, artistRepo.Create(artist))
	f.artistID = artist.ID

	return f
}

func (f *guestspotFixture) addArtist(t *testing.T, username string) (userID, artistID string) {
	t.Helper()

	user := &models.User{Email: username + "@ink.test", Username: username, Role: models.UserRoleArtist}
	require.NoError(t, memory.NewUserRepository(f.store).Create(user))

	artist := &models.Artist{UserID: user.ID, Name: username}
	require.NoError(t, memory.NewArtistRepository(f.store).Create(artist))
	return user.ID, artist.ID
}

func (f *guestspotFixture) createSpot(t *testing.T, start, end time.Time) *models.Guestspot {
	t.Helper()

	gs, err := f.service.CreateGuestspot(f.ownerID, models.UserRoleParlorOwner, &dto.CreateGuestspotRequest{
		ParlorID:  f.parlorID,
		DateStart: start,
		DateEnd:   end,
	})
	require.NoError(t, err)
	return gs
}

func (f *guestspotFixture) apply(t *testing.T, gsID string) *models.Guestspot {
	t.Helper()

	gs, err := f.service.Apply(f.artistUserID, models.UserRoleArtist, &dto.ApplyRequest{
		GuestspotID: gsID,
		Message:     "I would love a week here",
	})
	require.NoError(t, err)
	return gs
}

func futureRange() (time.Time, time.Time) {
	start := time.Now().Add(30 * 24 * time.Hour)
	return start, start.Add(7 * 24 * time.Hour)
}

func TestCreateGuestspot(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()

	gs := f.createSpot(t, start, end)
	assert.Equal(t, models.GuestspotStatusOpen, gs.Status)
	assert.Nil(t, gs.ArtistID)

	applicants, err := gs.ApplicantList()
	require.NoError(t, err)
	assert.Empty(t, applicants)
}

func TestCreateGuestspotInvalidDateRange(t *testing.T) {
	f := newGuestspotFixture(t)
	start, _ := futureRange()

	_, err := f.service.CreateGuestspot(f.ownerID, models.UserRoleParlorOwner, &dto.CreateGuestspotRequest{
		ParlorID:  f.parlorID,
		DateStart: start,
		DateEnd:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestCreateGuestspotRequiresOwnership(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()

	_, err := f.service.CreateGuestspot("someone-else", models.UserRoleParlorOwner, &dto.CreateGuestspotRequest{
		ParlorID:  f.parlorID,
		DateStart: start,
		DateEnd:   end,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestApplyMovesOpenToRequested(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	updated := f.apply(t, gs.ID)
	assert.Equal(t, models.GuestspotStatusRequested, updated.Status)

	applicants, err := updated.ApplicantList()
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, f.artistID, applicants[0].ArtistID)
	assert.False(t, applicants[0].AppliedAt.IsZero())
}

func TestApplyOnlyWhenOpen(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)

	otherUserID, _ := f.addArtist(t, "shader")
	_, err := f.service.Apply(otherUserID, models.UserRoleArtist, &dto.ApplyRequest{
		GuestspotID: gs.ID,
		Message:     "me too",
	})
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotOpen)

	_, err = f.service.Apply(f.artistUserID, models.UserRoleArtist, &dto.ApplyRequest{
		GuestspotID: gs.ID,
		Message:     "again",
	})
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotOpen)
}

func TestApproveConfirmsAndKeepsApplicants(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)

	approved, err := f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	assert.Equal(t, models.GuestspotStatusConfirmed, approved.Status)
	require.NotNil(t, approved.ArtistID)
	assert.Equal(t, f.artistID, *approved.ArtistID)

	applicants, err := approved.ApplicantList()
	require.NoError(t, err)
	assert.Len(t, applicants, 1, "applicant history survives approval")
}

func TestApproveRequiresApplicant(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)

	_, strangerID := f.addArtist(t, "stranger")
	_, err := f.service.Approve(gs.ID, strangerID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrNotAnApplicant)
}

func TestApproveRequiresRequestedStatus(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	_, err := f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotRequested)
}

func TestRejectLastApplicantReopens(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)

	rejected, err := f.service.Reject(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	assert.Equal(t, models.GuestspotStatusOpen, rejected.Status)
	applicants, err := rejected.ApplicantList()
	require.NoError(t, err)
	assert.Empty(t, applicants)
}

func TestRejectKeepsRemainingApplicants(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)
	_, secondID := f.addArtist(t, "shader")

	// Second application is seeded through the store; the service only
	// accepts applications while the spot is still open.
	repo := memory.NewGuestspotRepository(f.store)
	stored, err := repo.FindByID(gs.ID)
	require.NoError(t, err)
	applicants, err := stored.ApplicantList()
	require.NoError(t, err)
	applicants = append(applicants, models.Applicant{ArtistID: secondID, AppliedAt: time.Now()})
	require.NoError(t, stored.SetApplicantList(applicants))
	require.NoError(t, repo.Update(stored))

	afterFirst, err := f.service.Reject(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusRequested, afterFirst.Status)
	remaining, err := afterFirst.ApplicantList()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, secondID, remaining[0].ArtistID)

	afterSecond, err := f.service.Reject(gs.ID, secondID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusOpen, afterSecond.Status)
}

func TestRejectWithoutApplicants(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	_, err := f.service.Reject(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrNoApplicants)
}

func TestCancelFromAnyStatus(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()

	open := f.createSpot(t, start, end)
	cancelled, err := f.service.Cancel(open.ID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusCancelled, cancelled.Status)

	requested := f.createSpot(t, start, end)
	f.apply(t, requested.ID)
	cancelled, err = f.service.Cancel(requested.ID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusCancelled, cancelled.Status)
}

func TestAssignedArtistCanCancel(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)
	_, err := f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	cancelled, err := f.service.Cancel(gs.ID, f.artistUserID, models.UserRoleArtist)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusCancelled, cancelled.Status)
}

func TestCancelDeniedForOutsiders(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	outsiderID, _ := f.addArtist(t, "outsider")
	_, err := f.service.Cancel(gs.ID, outsiderID, models.UserRoleArtist)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestCompleteAfterEndDate(t *testing.T) {
	f := newGuestspotFixture(t)

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	f.service.now = func() time.Time { return start.Add(-48 * time.Hour) }
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)
	_, err := f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	// Still running.
	f.service.now = func() time.Time { return end.Add(-time.Hour) }
	_, err = f.service.Complete(gs.ID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotEnded)

	// Past the end date.
	f.service.now = func() time.Time { return end.Add(time.Hour) }
	completed, err := f.service.Complete(gs.ID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)
	assert.Equal(t, models.GuestspotStatusCompleted, completed.Status)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	f.service.now = func() time.Time { return end.Add(time.Hour) }
	_, err := f.service.Complete(gs.ID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotConfirmed)
}

func TestCompletedIsTerminal(t *testing.T) {
	f := newGuestspotFixture(t)
	start := time.Now().Add(-10 * 24 * time.Hour)
	end := time.Now().Add(-3 * 24 * time.Hour)

	f.service.now = func() time.Time { return start.Add(-time.Hour) }
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)
	_, err := f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	f.service.now = time.Now
	_, err = f.service.Complete(gs.ID, f.ownerID, models.UserRoleParlorOwner)
	require.NoError(t, err)

	_, err = f.service.Approve(gs.ID, f.artistID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotRequested)

	_, err = f.service.Complete(gs.ID, f.ownerID, models.UserRoleParlorOwner)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotNotConfirmed)
}

func TestUpdateGuestspotParlorImmutable(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)

	otherParlor := "different-parlor"
	_, err := f.service.UpdateGuestspot(gs.ID, f.ownerID, models.UserRoleParlorOwner, &dto.UpdateGuestspotRequest{
		ParlorID: &otherParlor,
	})
	assert.ErrorIs(t, err, apperrors.ErrParlorImmutable)
}

func TestGetOpenExcludesAssignedAndPast(t *testing.T) {
	f := newGuestspotFixture(t)
	now := time.Now()

	past := f.createSpot(t, now.Add(-14*24*time.Hour), now.Add(-7*24*time.Hour))
	_ = past

	upcoming := f.createSpot(t, now.Add(7*24*time.Hour), now.Add(14*24*time.Hour))
	taken := f.createSpot(t, now.Add(21*24*time.Hour), now.Add(28*24*time.Hour))
	f.apply(t, taken.ID)

	open, err := f.service.GetOpen(0)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, upcoming.ID, open[0].ID)
}

func TestGetUpcomingSortsAndLimits(t *testing.T) {
	f := newGuestspotFixture(t)
	now := time.Now()

	later := f.createSpot(t, now.Add(60*24*time.Hour), now.Add(67*24*time.Hour))
	sooner := f.createSpot(t, now.Add(7*24*time.Hour), now.Add(14*24*time.Hour))

	spots, err := f.service.GetUpcoming(0)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, sooner.ID, spots[0].ID)
	assert.Equal(t, later.ID, spots[1].ID)

	spots, err = f.service.GetUpcoming(1)
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, sooner.ID, spots[0].ID)
}

func TestConcurrentTransitionDetected(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()
	gs := f.createSpot(t, start, end)
	f.apply(t, gs.ID)

	// A stale in-memory copy still claims the spot is open; persisting a
	// transition from that state must fail.
	stale := *gs
	stale.Status = models.GuestspotStatusRequested
	err := f.service.persistTransition(&stale, models.GuestspotStatusOpen)
	assert.ErrorIs(t, err, apperrors.ErrGuestspotConflict)
}

func TestListGuestspotsByStatus(t *testing.T) {
	f := newGuestspotFixture(t)
	start, end := futureRange()

	f.createSpot(t, start, end)
	requested := f.createSpot(t, start, end)
	f.apply(t, requested.ID)

	status := models.GuestspotStatusRequested
	spots, err := f.service.ListGuestspots(repositories.GuestspotFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, spots, 1)
	assert.Equal(t, requested.ID, spots[0].ID)
}
