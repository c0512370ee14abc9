package services

import (
	"time"

	"inklink_backend/internal/auth"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"
)

type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	artistRepo      repositories.ArtistRepository
	parlorRepo      repositories.ParlorRepository
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	artistRepo repositories.ArtistRepository,
	parlorRepo repositories.ParlorRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		artistRepo:      artistRepo,
		parlorRepo:      parlorRepo,
	}
}

func (s *AppointmentService) CreateAppointment(userID string, role models.UserRole, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	clientID := userID
	if req.ClientID != "" && req.ClientID != userID {
		if role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		clientID = req.ClientID
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.NewBadRequestError("endTime must be after startTime")
	}

	artist, err := s.artistRepo.FindByID(req.ArtistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}

	// An overlapping booking for the same artist is rejected.
	existing, err := s.appointmentRepo.FindByArtistInRange(artist.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.Status != models.AppointmentStatusCancelled {
			return nil, apperrors.ErrConflict(nil, "appointment", "Artist already has an appointment in this time range")
		}
	}

	appt := &models.Appointment{
		ArtistID:    artist.ID,
		ClientID:    clientID,
		ParlorID:    req.ParlorID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Status:      models.AppointmentStatusPending,
	}
	if err := s.appointmentRepo.Create(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) GetAppointment(id, userID string, role models.UserRole) (*models.Appointment, error) {
	appt, err := s.findAppointment(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(appt, userID, role); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) GetClientAppointments(clientID string) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByClient(clientID)
}

func (s *AppointmentService) GetArtistAppointments(artistID string) ([]models.Appointment, error) {
	return s.appointmentRepo.FindByArtist(artistID)
}

// GetParlorAppointments lists a parlor's bookings for its owner or an
// admin, optionally narrowed to a time range.
func (s *AppointmentService) GetParlorAppointments(parlorID, userID string, role models.UserRole, from, to *time.Time) ([]models.Appointment, error) {
	parlor, err := s.parlorRepo.FindByID(parlorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrParlorNotFound) {
			return nil, apperrors.ErrParlorNotFound
		}
		return nil, err
	}
	if !auth.CanManageParlor(userID, role, parlor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if from != nil && to != nil {
		return s.appointmentRepo.FindByParlorInRange(parlorID, *from, *to)
	}
	return s.appointmentRepo.FindByParlor(parlorID)
}

// GetArtistSchedule returns the artist's bookings inside a time range; the
// original exposes this as the artist's availability view.
func (s *AppointmentService) GetArtistSchedule(artistID string, from, to time.Time) ([]models.Appointment, error) {
	if _, err := s.artistRepo.FindByID(artistID); err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return s.appointmentRepo.FindByArtistInRange(artistID, from, to)
}

func (s *AppointmentService) UpdateAppointment(id, userID string, role models.UserRole, req *dto.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.findAppointment(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(appt, userID, role); err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		appt.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		appt.EndTime = *req.EndTime
	}
	if req.Description != nil {
		appt.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewBadRequestError("Invalid appointment status")
		}
		appt.Status = *req.Status
	}

	if !appt.EndTime.After(appt.StartTime) {
		return nil, apperrors.NewBadRequestError("endTime must be after startTime")
	}

	if err := s.appointmentRepo.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) DeleteAppointment(id, userID string, role models.UserRole) error {
	appt, err := s.findAppointment(id)
	if err != nil {
		return err
	}
	if err := s.requireParticipant(appt, userID, role); err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return err
	}
	return nil
}

func (s *AppointmentService) findAppointment(id string) (*models.Appointment, error) {
	appt, err := s.appointmentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// requireParticipant allows the client, the booked artist's user, or an
// admin.
func (s *AppointmentService) requireParticipant(appt *models.Appointment, userID string, role models.UserRole) error {
	if role == models.UserRoleAdmin || appt.ClientID == userID {
		return nil
	}
	artist, err := s.artistRepo.FindByID(appt.ArtistID)
	if err == nil && artist.UserID == userID {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}
