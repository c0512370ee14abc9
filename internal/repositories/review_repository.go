package repositories

import (
	"errors"
	"math"

	"inklink_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewFilter struct {
	UserID     string
	TargetID   string
	TargetType models.ReviewTargetType
}

// RatingAggregate is the denormalized pair kept on artists and parlors.
type RatingAggregate struct {
	Rating float64 `json:"rating"`
	Count  int64   `json:"count"`
}

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindAll(filter ReviewFilter) ([]models.Review, error)
	FindByAuthorAndTarget(userID, targetID string, targetType models.ReviewTargetType) (*models.Review, error)
	Update(review *models.Review) error
	Delete(id string) error
	// AggregateRating computes the current mean (rounded to one decimal) and
	// count from the review rows. Zero reviews yields {0, 0}.
	AggregateRating(targetID string, targetType models.ReviewTargetType) (RatingAggregate, error)
	// RecomputeTargetRating recomputes the aggregate and writes it onto the
	// artist or parlor row, read and write inside one transaction.
	RecomputeTargetRating(targetID string, targetType models.ReviewTargetType) (RatingAggregate, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

// RoundRating rounds a raw mean to the canonical one-decimal representation.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindAll(filter ReviewFilter) ([]models.Review, error) {
	query := r.db.Model(&models.Review{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.TargetID != "" {
		query = query.Where("target_id = ?", filter.TargetID)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}

	var reviews []models.Review
	err := query.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindByAuthorAndTarget(userID, targetID string, targetType models.ReviewTargetType) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	result := r.db.Model(review).Updates(map[string]interface{}{
		"rating":  review.Rating,
		"title":   review.Title,
		"content": review.Content,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) AggregateRating(targetID string, targetType models.ReviewTargetType) (RatingAggregate, error) {
	return aggregateRating(r.db, targetID, targetType)
}

func aggregateRating(db *gorm.DB, targetID string, targetType models.ReviewTargetType) (RatingAggregate, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("target_id = ? AND target_type = ?", targetID, targetType).
		Scan(&row).Error
	if err != nil {
		return RatingAggregate{}, err
	}
	if row.Count == 0 || row.Avg == nil {
		return RatingAggregate{Rating: 0, Count: 0}, nil
	}
	return RatingAggregate{Rating: RoundRating(*row.Avg), Count: row.Count}, nil
}

func (r *ReviewRepositoryImpl) RecomputeTargetRating(targetID string, targetType models.ReviewTargetType) (RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		agg, txErr = aggregateRating(tx, targetID, targetType)
		if txErr != nil {
			return txErr
		}

		// The write goes through the owning repository bound to the
		// transaction so the aggregate is stored in exactly one place.
		switch targetType {
		case models.TargetTypeArtist:
			return NewArtistRepository(tx).UpdateRating(targetID, agg.Rating, agg.Count)
		case models.TargetTypeParlor:
			return NewParlorRepository(tx).UpdateRating(targetID, agg.Rating, agg.Count)
		}
		return nil
	})
	if err != nil {
		return RatingAggregate{}, err
	}
	return agg, nil
}
