package services

import (
	"time"

	"inklink_backend/internal/auth"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"
)

const (
	defaultUpcomingLimit = 6
	defaultOpenLimit     = 10
)

// GuestspotService owns the guestspot lifecycle:
//
//	open -> requested -> confirmed -> completed
//	  \________ any non-terminal ________/-> cancelled
//
// Applications move open->requested, approval requested->confirmed, and
// rejection of the last applicant drives requested back to open. Every
// transition is persisted with a compare-and-swap on the prior status, so a
// concurrent transition surfaces as a conflict instead of a lost update.
type GuestspotService struct {
	guestspotRepo repositories.GuestspotRepository
	parlorRepo    repositories.ParlorRepository
	artistRepo    repositories.ArtistRepository

	now func() time.Time
}

func NewGuestspotService(
	guestspotRepo repositories.GuestspotRepository,
	parlorRepo repositories.ParlorRepository,
	artistRepo repositories.ArtistRepository,
) *GuestspotService {
	return &GuestspotService{
		guestspotRepo: guestspotRepo,
		parlorRepo:    parlorRepo,
		artistRepo:    artistRepo,
		now:           time.Now,
	}
}

// --- CRUD ---

func (s *GuestspotService) CreateGuestspot(userID string, role models.UserRole, req *dto.CreateGuestspotRequest) (*models.Guestspot, error) {
	parlor, err := s.parlorRepo.FindByID(req.ParlorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrParlorNotFound) {
			return nil, apperrors.ErrParlorNotFound
		}
		return nil, err
	}

	if !auth.CanManageParlor(userID, role, parlor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if !req.DateEnd.After(req.DateStart) {
		return nil, apperrors.ErrInvalidDateRange
	}

	gs := &models.Guestspot{
		ParlorID:     req.ParlorID,
		Status:       models.GuestspotStatusOpen,
		DateStart:    req.DateStart,
		DateEnd:      req.DateEnd,
		Description:  req.Description,
		Requirements: req.Requirements,
		PriceInfo:    req.PriceInfo,
	}
	if err := gs.SetApplicantList([]models.Applicant{}); err != nil {
		return nil, err
	}

	if err := s.guestspotRepo.Create(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func (s *GuestspotService) GetGuestspot(id string) (*models.Guestspot, error) {
	return s.findGuestspot(id)
}

func (s *GuestspotService) ListGuestspots(filter repositories.GuestspotFilter) ([]models.Guestspot, error) {
	return s.guestspotRepo.FindAll(filter)
}

func (s *GuestspotService) GetParlorGuestspots(parlorID string) ([]models.Guestspot, error) {
	return s.guestspotRepo.FindAll(repositories.GuestspotFilter{ParlorID: parlorID})
}

func (s *GuestspotService) GetArtistGuestspots(artistID string) ([]models.Guestspot, error) {
	return s.guestspotRepo.FindAll(repositories.GuestspotFilter{ArtistID: artistID})
}

// GetUpcoming returns guestspots starting in the future, soonest first.
func (s *GuestspotService) GetUpcoming(limit int) ([]models.Guestspot, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	return s.guestspotRepo.FindUpcoming(s.now(), limit)
}

// GetOpen returns future guestspots that are open and unassigned, soonest
// first.
func (s *GuestspotService) GetOpen(limit int) ([]models.Guestspot, error) {
	if limit <= 0 {
		limit = defaultOpenLimit
	}
	return s.guestspotRepo.FindOpen(s.now(), limit)
}

func (s *GuestspotService) UpdateGuestspot(id, userID string, role models.UserRole, req *dto.UpdateGuestspotRequest) (*models.Guestspot, error) {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParlorOwner(gs, userID, role); err != nil {
		return nil, err
	}

	if req.ParlorID != nil && *req.ParlorID != gs.ParlorID {
		return nil, apperrors.ErrParlorImmutable
	}
	if req.DateStart != nil {
		gs.DateStart = *req.DateStart
	}
	if req.DateEnd != nil {
		gs.DateEnd = *req.DateEnd
	}
	if req.Description != nil {
		gs.Description = *req.Description
	}
	if req.Requirements != nil {
		gs.Requirements = *req.Requirements
	}
	if req.PriceInfo != nil {
		gs.PriceInfo = *req.PriceInfo
	}

	if !gs.DateEnd.After(gs.DateStart) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.guestspotRepo.Update(gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// DeleteGuestspot removes the record entirely, distinct from the cancel and
// complete transitions.
func (s *GuestspotService) DeleteGuestspot(id, userID string, role models.UserRole) error {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return err
	}
	if err := s.requireParlorOwner(gs, userID, role); err != nil {
		return err
	}

	if err := s.guestspotRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrGuestspotNotFound) {
			return apperrors.ErrGuestspotNotFound
		}
		return err
	}
	return nil
}

// --- Lifecycle transitions ---

// Apply records an artist's interest in an open guestspot and moves it to
// requested. Repeat applications from the same artist are rejected.
func (s *GuestspotService) Apply(userID string, role models.UserRole, req *dto.ApplyRequest) (*models.Guestspot, error) {
	artistID, err := s.resolveApplicant(userID, role, req.ArtistID)
	if err != nil {
		return nil, err
	}

	gs, err := s.findGuestspot(req.GuestspotID)
	if err != nil {
		return nil, err
	}

	if gs.Status != models.GuestspotStatusOpen {
		return nil, apperrors.ErrGuestspotNotOpen
	}

	applicants, err := gs.ApplicantList()
	if err != nil {
		return nil, err
	}
	for _, a := range applicants {
		if a.ArtistID == artistID {
			return nil, apperrors.ErrDuplicateApplication
		}
	}

	portfolio := req.Portfolio
	if portfolio == nil {
		portfolio = []string{}
	}
	applicants = append(applicants, models.Applicant{
		ArtistID:  artistID,
		Message:   req.Message,
		Portfolio: portfolio,
		AppliedAt: s.now(),
	})
	if err := gs.SetApplicantList(applicants); err != nil {
		return nil, err
	}

	gs.Status = models.GuestspotStatusRequested
	if err := s.persistTransition(gs, models.GuestspotStatusOpen); err != nil {
		return nil, err
	}
	return gs, nil
}

// Approve assigns the applicant to the guestspot and confirms it. The
// applicant list is kept as history, winner included.
func (s *GuestspotService) Approve(id, artistID, userID string, role models.UserRole) (*models.Guestspot, error) {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParlorOwner(gs, userID, role); err != nil {
		return nil, err
	}

	if gs.Status != models.GuestspotStatusRequested {
		return nil, apperrors.ErrGuestspotNotRequested
	}

	isApplicant, err := gs.HasApplicant(artistID)
	if err != nil {
		return nil, err
	}
	if !isApplicant {
		return nil, apperrors.ErrNotAnApplicant
	}

	gs.ArtistID = &artistID
	gs.Status = models.GuestspotStatusConfirmed
	if err := s.persistTransition(gs, models.GuestspotStatusRequested); err != nil {
		return nil, err
	}
	return gs, nil
}

// Reject removes the artist's application. Rejecting the last applicant
// drives the spot back to open; otherwise the status is left alone so the
// remaining applicants can still be approved or rejected.
func (s *GuestspotService) Reject(id, artistID, userID string, role models.UserRole) (*models.Guestspot, error) {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParlorOwner(gs, userID, role); err != nil {
		return nil, err
	}

	applicants, err := gs.ApplicantList()
	if err != nil {
		return nil, err
	}
	if len(applicants) == 0 {
		return nil, apperrors.ErrNoApplicants
	}

	remaining := make([]models.Applicant, 0, len(applicants))
	for _, a := range applicants {
		if a.ArtistID != artistID {
			remaining = append(remaining, a)
		}
	}
	if err := gs.SetApplicantList(remaining); err != nil {
		return nil, err
	}

	fromStatus := gs.Status
	if len(remaining) == 0 {
		gs.Status = models.GuestspotStatusOpen
	}
	if err := s.persistTransition(gs, fromStatus); err != nil {
		return nil, err
	}
	return gs, nil
}

// Cancel is reachable from any status; the parlor owner, the assigned
// artist, or an admin may cancel.
func (s *GuestspotService) Cancel(id, userID string, role models.UserRole) (*models.Guestspot, error) {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return nil, err
	}

	parlor, err := s.findOwningParlor(gs)
	if err != nil {
		return nil, err
	}

	allowed := auth.CanManageParlor(userID, role, parlor)
	if !allowed && gs.ArtistID != nil {
		artist, artistErr := s.artistRepo.FindByID(*gs.ArtistID)
		if artistErr == nil && artist.UserID == userID {
			allowed = true
		}
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	fromStatus := gs.Status
	gs.Status = models.GuestspotStatusCancelled
	if err := s.persistTransition(gs, fromStatus); err != nil {
		return nil, err
	}
	return gs, nil
}

// Complete closes out a confirmed guestspot once its end date has passed.
func (s *GuestspotService) Complete(id, userID string, role models.UserRole) (*models.Guestspot, error) {
	gs, err := s.findGuestspot(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParlorOwner(gs, userID, role); err != nil {
		return nil, err
	}

	if gs.Status != models.GuestspotStatusConfirmed {
		return nil, apperrors.ErrGuestspotNotConfirmed
	}
	if s.now().Before(gs.DateEnd) {
		return nil, apperrors.ErrGuestspotNotEnded
	}

	gs.Status = models.GuestspotStatusCompleted
	if err := s.persistTransition(gs, models.GuestspotStatusConfirmed); err != nil {
		return nil, err
	}
	return gs, nil
}

// --- helpers ---

func (s *GuestspotService) findGuestspot(id string) (*models.Guestspot, error) {
	gs, err := s.guestspotRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGuestspotNotFound) {
			return nil, apperrors.ErrGuestspotNotFound
		}
		return nil, err
	}
	return gs, nil
}

func (s *GuestspotService) findOwningParlor(gs *models.Guestspot) (*models.Parlor, error) {
	parlor, err := s.parlorRepo.FindByID(gs.ParlorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrParlorNotFound) {
			return nil, apperrors.ErrParlorNotFound
		}
		return nil, err
	}
	return parlor, nil
}

func (s *GuestspotService) requireParlorOwner(gs *models.Guestspot, userID string, role models.UserRole) error {
	parlor, err := s.findOwningParlor(gs)
	if err != nil {
		return err
	}
	if !auth.CanManageParlor(userID, role, parlor) {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

// resolveApplicant maps the requester to the applying artist. Admins may
// apply on behalf of an explicit artist.
func (s *GuestspotService) resolveApplicant(userID string, role models.UserRole, explicitArtistID string) (string, error) {
	artist, err := s.artistRepo.FindByUserID(userID)
	if err == nil {
		return artist.ID, nil
	}
	if !apperrors.Is(err, repositories.ErrArtistNotFound) {
		return "", err
	}

	if role != models.UserRoleAdmin {
		return "", apperrors.ErrArtistNotFound
	}
	if explicitArtistID == "" {
		return "", apperrors.NewBadRequestError("Artist ID is required")
	}
	if _, err := s.artistRepo.FindByID(explicitArtistID); err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return "", apperrors.ErrArtistNotFound
		}
		return "", err
	}
	return explicitArtistID, nil
}

func (s *GuestspotService) persistTransition(gs *models.Guestspot, fromStatus models.GuestspotStatus) error {
	err := s.guestspotRepo.UpdateTransition(gs, fromStatus)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGuestspotNotFound) {
			return apperrors.ErrGuestspotNotFound
		}
		if apperrors.Is(err, repositories.ErrStaleUpdate) {
			return apperrors.ErrGuestspotConflict
		}
		return err
	}
	return nil
}
