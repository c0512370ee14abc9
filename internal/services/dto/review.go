package dto

import "inklink_backend/internal/models"

type CreateReviewRequest struct {
	TargetID   string                  `json:"targetId" validate:"required"`
	TargetType models.ReviewTargetType `json:"targetType" validate:"required,is-target-type"`
	Rating     int                     `json:"rating" validate:"required,min=1,max=5"`
	Title      string                  `json:"title" validate:"max=200"`
	Content    string                  `json:"content" validate:"max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content" validate:"omitempty,max=2000"`
	// Restricted fields: present so an update attempt fails loudly instead
	// of being silently dropped.
	UserID     *string `json:"userId"`
	TargetID   *string `json:"targetId"`
	TargetType *string `json:"targetType"`
}

// ReviewWithTarget is a review enriched with its target's display name for
// the "my reviews" listing.
type ReviewWithTarget struct {
	models.Review
	TargetName string `json:"targetName"`
}
