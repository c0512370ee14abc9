package dto

type CreateParlorRequest struct {
	// OwnerID is honored only for admin callers.
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=4000"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	PostalCode  string   `json:"postalCode"`
	Amenities   []string `json:"amenities"`
}

type UpdateParlorRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Country     *string  `json:"country"`
	PostalCode  *string  `json:"postalCode"`
	Amenities   []string `json:"amenities"`
	// Admin-only flags.
	Featured  *bool `json:"featured"`
	Sponsored *bool `json:"sponsored"`
}
