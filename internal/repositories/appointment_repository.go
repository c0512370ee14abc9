package repositories

import (
	"errors"
	"time"

	"inklink_backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	FindByID(id string) (*models.Appointment, error)
	FindByArtist(artistID string) ([]models.Appointment, error)
	FindByClient(clientID string) ([]models.Appointment, error)
	FindByParlor(parlorID string) ([]models.Appointment, error)
	// The InRange variants return appointments overlapping [from, to).
	FindByArtistInRange(artistID string, from, to time.Time) ([]models.Appointment, error)
	FindByParlorInRange(parlorID string, from, to time.Time) ([]models.Appointment, error)
	Update(appt *models.Appointment) error
	Delete(id string) error
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *AppointmentRepositoryImpl) FindByID(id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepositoryImpl) FindByArtist(artistID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("artist_id = ?", artistID).Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) FindByClient(clientID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("client_id = ?", clientID).Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) FindByParlor(parlorID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("parlor_id = ?", parlorID).Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) FindByArtistInRange(artistID string, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("artist_id = ? AND start_time < ? AND end_time > ?", artistID, to, from).
		Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) FindByParlorInRange(parlorID string, from, to time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("parlor_id = ? AND start_time < ? AND end_time > ?", parlorID, to, from).
		Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *AppointmentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
