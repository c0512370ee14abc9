package repositories

import (
	"errors"
	"strings"

	"inklink_backend/internal/models"

	"gorm.io/gorm"
)

// ArtistFilter narrows FindAll. Nil/zero fields are ignored.
type ArtistFilter struct {
	City      string
	State     string
	Country   string
	ParlorID  string
	Featured  *bool
	Sponsored *bool
}

type ArtistRepository interface {
	Create(artist *models.Artist) error
	FindByID(id string) (*models.Artist, error)
	FindByUserID(userID string) (*models.Artist, error)
	FindByParlorID(parlorID string) ([]models.Artist, error)
	FindAll(filter ArtistFilter) ([]models.Artist, error)
	FindFeatured(limit int) ([]models.Artist, error)
	FindSponsored(limit int) ([]models.Artist, error)
	FindTraveling(limit int) ([]models.Artist, error)
	Search(term string, limit int) ([]models.Artist, error)
	Update(artist *models.Artist) error
	UpdateRating(id string, rating float64, count int64) error
	Delete(id string) error
}

type ArtistRepositoryImpl struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &ArtistRepositoryImpl{db: db}
}

func (r *ArtistRepositoryImpl) Create(artist *models.Artist) error {
	return r.db.Create(artist).Error
}

func (r *ArtistRepositoryImpl) FindByID(id string) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.First(&artist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) FindByUserID(userID string) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.First(&artist, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepositoryImpl) FindByParlorID(parlorID string) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Where("parlor_id = ?", parlorID).Order("name ASC").Find(&artists).Error
	return artists, err
}

func (r *ArtistRepositoryImpl) FindAll(filter ArtistFilter) ([]models.Artist, error) {
	query := r.db.Model(&models.Artist{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.ParlorID != "" {
		query = query.Where("parlor_id = ?", filter.ParlorID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Sponsored != nil {
		query = query.Where("sponsored = ?", *filter.Sponsored)
	}

	var artists []models.Artist
	err := query.Order("name ASC").Find(&artists).Error
	return artists, err
}

func (r *ArtistRepositoryImpl) FindFeatured(limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Where("featured = ?", true).Limit(limit).Find(&artists).Error
	return artists, err
}

func (r *ArtistRepositoryImpl) FindSponsored(limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Where("sponsored = ?", true).Limit(limit).Find(&artists).Error
	return artists, err
}

func (r *ArtistRepositoryImpl) FindTraveling(limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Where("travel_willing = ?", true).Limit(limit).Find(&artists).Error
	return artists, err
}

// Search matches name, bio, specialties and location, case-insensitive
// substring the way the directory UI expects.
func (r *ArtistRepositoryImpl) Search(term string, limit int) ([]models.Artist, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var artists []models.Artist
	err := r.db.Where(
		"LOWER(name) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ? OR LOWER(country) LIKE ? OR LOWER(specialties::text) LIKE ?",
		pattern, pattern, pattern, pattern, pattern, pattern,
	).Limit(limit).Find(&artists).Error
	return artists, err
}

func (r *ArtistRepositoryImpl) Update(artist *models.Artist) error {
	return r.db.Save(artist).Error
}

// UpdateRating writes the denormalized aggregate in one UPDATE so readers
// never observe a torn rating/count pair.
func (r *ArtistRepositoryImpl) UpdateRating(id string, rating float64, count int64) error {
	result := r.db.Model(&models.Artist{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": count})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}
	return nil
}

func (r *ArtistRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Artist{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}
	return nil
}
