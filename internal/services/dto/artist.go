package dto

type CreateArtistRequest struct {
	// UserID is honored only for admin callers; artists create their own
	// profile.
	UserID        string   `json:"userId"`
	Name          string   `json:"name" validate:"required,max=120"`
	Bio           string   `json:"bio" validate:"max=4000"`
	Specialties   []string `json:"specialties"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	ParlorID      *string  `json:"parlorId"`
	TravelWilling bool     `json:"travelWilling"`
}

type UpdateArtistRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=120"`
	Bio           *string  `json:"bio" validate:"omitempty,max=4000"`
	Specialties   []string `json:"specialties"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Country       *string  `json:"country"`
	ParlorID      *string  `json:"parlorId"`
	TravelWilling *bool    `json:"travelWilling"`
	// Admin-only flags.
	Featured  *bool `json:"featured"`
	Sponsored *bool `json:"sponsored"`
}
