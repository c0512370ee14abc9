package dto

import "time"

type CreateGuestspotRequest struct {
	ParlorID     string    `json:"parlorId" validate:"required"`
	DateStart    time.Time `json:"dateStart" validate:"required"`
	DateEnd      time.Time `json:"dateEnd" validate:"required"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	PriceInfo    string    `json:"priceInfo"`
}

type UpdateGuestspotRequest struct {
	// ParlorID is accepted so a change attempt can be rejected explicitly;
	// the owning parlor is immutable after creation.
	ParlorID     *string    `json:"parlorId"`
	DateStart    *time.Time `json:"dateStart"`
	DateEnd      *time.Time `json:"dateEnd"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	PriceInfo    *string    `json:"priceInfo"`
}

type ApplyRequest struct {
	GuestspotID string   `json:"guestspotId" validate:"required"`
	Message     string   `json:"message" validate:"required"`
	Portfolio   []string `json:"portfolio" validate:"omitempty,dive,url"`
	// ArtistID is honored only for admin callers; artists apply as
	// themselves.
	ArtistID string `json:"artistId"`
}

type ListGuestspotsQuery struct {
	Status    string `form:"status" validate:"omitempty,is-guestspot-status"`
	ParlorID  string `form:"parlorId"`
	ArtistID  string `form:"artistId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
