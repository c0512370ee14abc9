package repositories

import (
	"errors"
	"strings"

	"inklink_backend/internal/models"

	"gorm.io/gorm"
)

type ParlorFilter struct {
	City      string
	State     string
	Country   string
	OwnerID   string
	Featured  *bool
	Sponsored *bool
}

type ParlorRepository interface {
	Create(parlor *models.Parlor) error
	FindByID(id string) (*models.Parlor, error)
	FindByOwnerID(ownerID string) ([]models.Parlor, error)
	FindAll(filter ParlorFilter) ([]models.Parlor, error)
	FindFeatured(limit int) ([]models.Parlor, error)
	FindSponsored(limit int) ([]models.Parlor, error)
	Search(term string, limit int) ([]models.Parlor, error)
	Update(parlor *models.Parlor) error
	UpdateRating(id string, rating float64, count int64) error
	Delete(id string) error
}

type ParlorRepositoryImpl struct {
	db *gorm.DB
}

func NewParlorRepository(db *gorm.DB) ParlorRepository {
	return &ParlorRepositoryImpl{db: db}
}

func (r *ParlorRepositoryImpl) Create(parlor *models.Parlor) error {
	return r.db.Create(parlor).Error
}

func (r *ParlorRepositoryImpl) FindByID(id string) (*models.Parlor, error) {
	var parlor models.Parlor
	err := r.db.First(&parlor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParlorNotFound
		}
		return nil, err
	}
	return &parlor, nil
}

func (r *ParlorRepositoryImpl) FindByOwnerID(ownerID string) ([]models.Parlor, error) {
	var parlors []models.Parlor
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&parlors).Error
	return parlors, err
}

func (r *ParlorRepositoryImpl) FindAll(filter ParlorFilter) ([]models.Parlor, error) {
	query := r.db.Model(&models.Parlor{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Sponsored != nil {
		query = query.Where("sponsored = ?", *filter.Sponsored)
	}

	var parlors []models.Parlor
	err := query.Order("name ASC").Find(&parlors).Error
	return parlors, err
}

func (r *ParlorRepositoryImpl) FindFeatured(limit int) ([]models.Parlor, error) {
	var parlors []models.Parlor
	err := r.db.Where("featured = ?", true).Limit(limit).Find(&parlors).Error
	return parlors, err
}

func (r *ParlorRepositoryImpl) FindSponsored(limit int) ([]models.Parlor, error) {
	var parlors []models.Parlor
	err := r.db.Where("sponsored = ?", true).Limit(limit).Find(&parlors).Error
	return parlors, err
}

func (r *ParlorRepositoryImpl) Search(term string, limit int) ([]models.Parlor, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var parlors []models.Parlor
	err := r.db.Where(
		"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ? OR LOWER(country) LIKE ? OR LOWER(postal_code) LIKE ? OR LOWER(amenities::text) LIKE ?",
		pattern, pattern, pattern, pattern, pattern, pattern, pattern, pattern,
	).Limit(limit).Find(&parlors).Error
	return parlors, err
}

func (r *ParlorRepositoryImpl) Update(parlor *models.Parlor) error {
	return r.db.Save(parlor).Error
}

// UpdateRating writes the denormalized aggregate in one UPDATE so readers
// never observe a torn rating/count pair.
func (r *ParlorRepositoryImpl) UpdateRating(id string, rating float64, count int64) error {
	result := r.db.Model(&models.Parlor{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParlorNotFound
	}
	return nil
}

func (r *ParlorRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Parlor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParlorNotFound
	}
	return nil
}
