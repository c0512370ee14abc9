package models

import (
	"gorm.io/datatypes"
)

type Parlor struct {
	BaseModel
	OwnerID     string         `gorm:"index;not null" json:"ownerId"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country"`
	PostalCode  string         `json:"postalCode"`
	Amenities   datatypes.JSON `gorm:"type:jsonb" json:"amenities"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	Sponsored   bool           `gorm:"default:false" json:"sponsored"`
	Rating      float64        `gorm:"default:0" json:"rating"`
	ReviewCount int64          `gorm:"default:0" json:"reviewCount"`
}
