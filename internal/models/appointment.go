package models

import "time"

type Appointment struct {
	BaseModel
	ArtistID    string            `gorm:"index;not null" json:"artistId"`
	ClientID    string            `gorm:"index;not null" json:"clientId"`
	ParlorID    *string           `gorm:"index" json:"parlorId,omitempty"`
	StartTime   time.Time         `gorm:"not null" json:"startTime"`
	EndTime     time.Time         `gorm:"not null" json:"endTime"`
	Description string            `json:"description"`
	Status      AppointmentStatus `gorm:"not null;default:'pending'" json:"status"`
}
