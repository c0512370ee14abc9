package models

import (
	"gorm.io/datatypes"
)

type Artist struct {
	BaseModel
	UserID      string         `gorm:"index" json:"userId"`
	Name        string         `gorm:"not null" json:"name"`
	Bio         string         `json:"bio"`
	Specialties datatypes.JSON `gorm:"type:jsonb" json:"specialties"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Country     string         `json:"country"`
	ParlorID    *string        `gorm:"index" json:"parlorId,omitempty"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	Sponsored   bool           `gorm:"default:false" json:"sponsored"`
	// TravelWilling marks artists open to guestspots away from home.
	TravelWilling bool    `gorm:"default:false" json:"travelWilling"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	ReviewCount   int64   `gorm:"default:0" json:"reviewCount"`
}
