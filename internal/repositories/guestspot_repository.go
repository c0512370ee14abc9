package repositories

import (
	"errors"
	"time"

	"inklink_backend/internal/models"

	"gorm.io/gorm"
)

// GuestspotFilter narrows FindAll. Nil/zero fields are ignored.
type GuestspotFilter struct {
	Status    *models.GuestspotStatus
	ParlorID  string
	ArtistID  string
	StartFrom *time.Time // dateStart >= StartFrom
	EndUntil  *time.Time // dateEnd <= EndUntil
}

type GuestspotRepository interface {
	Create(gs *models.Guestspot) error
	FindByID(id string) (*models.Guestspot, error)
	FindAll(filter GuestspotFilter) ([]models.Guestspot, error)
	// FindUpcoming returns spots starting after now, soonest first.
	FindUpcoming(now time.Time, limit int) ([]models.Guestspot, error)
	// FindOpen returns open, unassigned spots starting after now, soonest
	// first.
	FindOpen(now time.Time, limit int) ([]models.Guestspot, error)
	Update(gs *models.Guestspot) error
	// UpdateTransition persists a lifecycle transition with a
	// compare-and-swap on the prior status. Returns ErrStaleUpdate when the
	// record no longer has fromStatus (a concurrent transition won).
	UpdateTransition(gs *models.Guestspot, fromStatus models.GuestspotStatus) error
	Delete(id string) error
}

type GuestspotRepositoryImpl struct {
	db *gorm.DB
}

func NewGuestspotRepository(db *gorm.DB) GuestspotRepository {
	return &GuestspotRepositoryImpl{db: db}
}

func (r *GuestspotRepositoryImpl) Create(gs *models.Guestspot) error {
	return r.db.Create(gs).Error
}

func (r *GuestspotRepositoryImpl) FindByID(id string) (*models.Guestspot, error) {
	var gs models.Guestspot
	err := r.db.First(&gs, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestspotNotFound
		}
		return nil, err
	}
	return &gs, nil
}

func (r *GuestspotRepositoryImpl) FindAll(filter GuestspotFilter) ([]models.Guestspot, error) {
	query := r.db.Model(&models.Guestspot{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ParlorID != "" {
		query = query.Where("parlor_id = ?", filter.ParlorID)
	}
	if filter.ArtistID != "" {
		query = query.Where("artist_id = ?", filter.ArtistID)
	}
	if filter.StartFrom != nil {
		query = query.Where("date_start >= ?", *filter.StartFrom)
	}
	if filter.EndUntil != nil {
		query = query.Where("date_end <= ?", *filter.EndUntil)
	}

	var spots []models.Guestspot
	err := query.Order("date_start ASC").Find(&spots).Error
	return spots, err
}

func (r *GuestspotRepositoryImpl) FindUpcoming(now time.Time, limit int) ([]models.Guestspot, error) {
	var spots []models.Guestspot
	err := r.db.Where("date_start > ?", now).
		Order("date_start ASC").
		Limit(limit).
		Find(&spots).Error
	return spots, err
}

func (r *GuestspotRepositoryImpl) FindOpen(now time.Time, limit int) ([]models.Guestspot, error) {
	var spots []models.Guestspot
	err := r.db.Where("date_start > ? AND status = ? AND (artist_id IS NULL OR artist_id = '')",
		now, models.GuestspotStatusOpen).
		Order("date_start ASC").
		Limit(limit).
		Find(&spots).Error
	return spots, err
}

func (r *GuestspotRepositoryImpl) Update(gs *models.Guestspot) error {
	return r.db.Save(gs).Error
}

func (r *GuestspotRepositoryImpl) UpdateTransition(gs *models.Guestspot, fromStatus models.GuestspotStatus) error {
	result := r.db.Model(&models.Guestspot{}).
		Where("id = ? AND status = ?", gs.ID, fromStatus).
		Updates(map[string]interface{}{
			"status":     gs.Status,
			"artist_id":  gs.ArtistID,
			"applicants": gs.Applicants,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the spot is gone or its status moved under us.
		var count int64
		if err := r.db.Model(&models.Guestspot{}).Where("id = ?", gs.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrGuestspotNotFound
		}
		return ErrStaleUpdate
	}
	return nil
}

func (r *GuestspotRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Guestspot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuestspotNotFound
	}
	return nil
}
