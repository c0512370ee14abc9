package dto

import (
	"time"

	"inklink_backend/internal/models"
)

type CreateAppointmentRequest struct {
	ArtistID string `json:"artistId" validate:"required"`
	// ClientID defaults to the requester; admins may book for others.
	ClientID    string    `json:"clientId"`
	ParlorID    *string   `json:"parlorId"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Description string    `json:"description" validate:"max=2000"`
}

type UpdateAppointmentRequest struct {
	StartTime   *time.Time                `json:"startTime"`
	EndTime     *time.Time                `json:"endTime"`
	Description *string                   `json:"description" validate:"omitempty,max=2000"`
	Status      *models.AppointmentStatus `json:"status" validate:"omitempty,is-appointment-status"`
}
