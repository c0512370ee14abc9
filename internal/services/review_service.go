package services

import (
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"
)

// ReviewService manages reviews of artists and parlors. Every mutation that
// touches a rating recomputes the target's aggregate from the surviving
// review rows, so the denormalized rating/review_count pair on the target is
// always derivable from the reviews themselves.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	artistRepo repositories.ArtistRepository
	parlorRepo repositories.ParlorRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	artistRepo repositories.ArtistRepository,
	parlorRepo repositories.ParlorRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		artistRepo: artistRepo,
		parlorRepo: parlorRepo,
	}
}

func (s *ReviewService) CreateReview(userID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	targetType := models.ReviewTargetType(req.TargetType)
	if !targetType.Valid() {
		return nil, apperrors.ErrInvalidTargetType
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	if err := s.checkTargetExists(req.TargetID, targetType); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.FindByAuthorAndTarget(userID, req.TargetID, targetType)
	if err != nil && !apperrors.Is(err, repositories.ErrReviewNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateReview
	}

	review := &models.Review{
		UserID:     userID,
		TargetID:   req.TargetID,
		TargetType: targetType,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	if _, err := s.reviewRepo.RecomputeTargetRating(review.TargetID, review.TargetType); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetReview(id string) (*models.Review, error) {
	return s.findReview(id)
}

func (s *ReviewService) GetTargetReviews(targetID string, targetType models.ReviewTargetType) ([]models.Review, error) {
	if !targetType.Valid() {
		return nil, apperrors.ErrInvalidTargetType
	}
	return s.reviewRepo.FindAll(repositories.ReviewFilter{
		TargetID:   targetID,
		TargetType: targetType,
	})
}

// GetUserReviews returns the user's reviews with the target's display name
// attached for listing.
func (s *ReviewService) GetUserReviews(userID string) ([]dto.ReviewWithTarget, error) {
	reviews, err := s.reviewRepo.FindAll(repositories.ReviewFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	enriched := make([]dto.ReviewWithTarget, 0, len(reviews))
	for _, review := range reviews {
		enriched = append(enriched, dto.ReviewWithTarget{
			Review:     review,
			TargetName: s.targetName(review.TargetID, review.TargetType),
		})
	}
	return enriched, nil
}

// GetTargetRating reports the live aggregate for a target without touching
// the denormalized copy.
func (s *ReviewService) GetTargetRating(targetID string, targetType models.ReviewTargetType) (repositories.RatingAggregate, error) {
	if !targetType.Valid() {
		return repositories.RatingAggregate{}, apperrors.ErrInvalidTargetType
	}
	return s.reviewRepo.AggregateRating(targetID, targetType)
}

// UpdateReview lets the author or an admin change the rating, title, or
// content. The author, target, and target type of a review never change.
func (s *ReviewService) UpdateReview(id, userID string, role models.UserRole, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.findReview(id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID && role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.UserID != nil || req.TargetID != nil || req.TargetType != nil {
		return nil, apperrors.ErrReviewFieldsImmutable
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperrors.ErrInvalidRating
		}
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	if _, err := s.reviewRepo.RecomputeTargetRating(review.TargetID, review.TargetType); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(id, userID string, role models.UserRole) error {
	review, err := s.findReview(id)
	if err != nil {
		return err
	}
	if review.UserID != userID && role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	// Capture the target before the row disappears; the recompute below has
	// to run against it.
	targetID, targetType := review.TargetID, review.TargetType

	if err := s.reviewRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return err
	}

	if _, err := s.reviewRepo.RecomputeTargetRating(targetID, targetType); err != nil {
		return err
	}
	return nil
}

func (s *ReviewService) findReview(id string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) checkTargetExists(targetID string, targetType models.ReviewTargetType) error {
	switch targetType {
	case models.TargetTypeArtist:
		if _, err := s.artistRepo.FindByID(targetID); err != nil {
			if apperrors.Is(err, repositories.ErrArtistNotFound) {
				return apperrors.ErrArtistNotFound
			}
			return err
		}
	case models.TargetTypeParlor:
		if _, err := s.parlorRepo.FindByID(targetID); err != nil {
			if apperrors.Is(err, repositories.ErrParlorNotFound) {
				return apperrors.ErrParlorNotFound
			}
			return err
		}
	}
	return nil
}

func (s *ReviewService) targetName(targetID string, targetType models.ReviewTargetType) string {
	switch targetType {
	case models.TargetTypeArtist:
		if artist, err := s.artistRepo.FindByID(targetID); err == nil {
			return artist.Name
		}
		return "Unknown Artist"
	case models.TargetTypeParlor:
		if parlor, err := s.parlorRepo.FindByID(targetID); err == nil {
			return parlor.Name
		}
		return "Unknown Parlor"
	}
	return ""
}
