package memory

import (
	"sort"
	"time"

	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
)

type ReviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

var _ repositories.ReviewRepository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Create(review *models.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stampNew(&review.BaseModel)
	r.store.reviews[review.ID] = *review
	return nil
}

func (r *ReviewRepository) FindByID(id string) (*models.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	review, ok := r.store.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	return &review, nil
}

func (r *ReviewRepository) FindAll(filter repositories.ReviewFilter) ([]models.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Review
	for _, review := range r.store.reviews {
		if filter.UserID != "" && review.UserID != filter.UserID {
			continue
		}
		if filter.TargetID != "" && review.TargetID != filter.TargetID {
			continue
		}
		if filter.TargetType != "" && review.TargetType != filter.TargetType {
			continue
		}
		out = append(out, review)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ReviewRepository) FindByAuthorAndTarget(userID, targetID string, targetType models.ReviewTargetType) (*models.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, review := range r.store.reviews {
		if review.UserID == userID && review.TargetID == targetID && review.TargetType == targetType {
			rv := review
			return &rv, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *ReviewRepository) Update(review *models.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.reviews[review.ID]
	if !ok {
		return repositories.ErrReviewNotFound
	}
	current.Rating = review.Rating
	current.Title = review.Title
	current.Content = review.Content
	current.UpdatedAt = time.Now()
	r.store.reviews[review.ID] = current
	return nil
}

func (r *ReviewRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.store.reviews, id)
	return nil
}

func (r *ReviewRepository) AggregateRating(targetID string, targetType models.ReviewTargetType) (repositories.RatingAggregate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.aggregateLocked(targetID, targetType), nil
}

func (r *ReviewRepository) aggregateLocked(targetID string, targetType models.ReviewTargetType) repositories.RatingAggregate {
	var sum, count int64
	for _, review := range r.store.reviews {
		if review.TargetID == targetID && review.TargetType == targetType {
			sum += int64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return repositories.RatingAggregate{Rating: 0, Count: 0}
	}
	mean := float64(sum) / float64(count)
	return repositories.RatingAggregate{Rating: repositories.RoundRating(mean), Count: count}
}

// RecomputeTargetRating recomputes and writes the aggregate under a single
// lock section, the in-memory equivalent of the gorm transaction.
func (r *ReviewRepository) RecomputeTargetRating(targetID string, targetType models.ReviewTargetType) (repositories.RatingAggregate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	agg := r.aggregateLocked(targetID, targetType)

	switch targetType {
	case models.TargetTypeArtist:
		if !r.store.setArtistRatingLocked(targetID, agg.Rating, agg.Count) {
			return repositories.RatingAggregate{}, repositories.ErrArtistNotFound
		}
	case models.TargetTypeParlor:
		if !r.store.setParlorRatingLocked(targetID, agg.Rating, agg.Count) {
			return repositories.RatingAggregate{}, repositories.ErrParlorNotFound
		}
	}
	return agg, nil
}
