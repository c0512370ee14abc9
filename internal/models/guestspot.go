package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Applicant is one artist's submitted interest in a guestspot. The list is
// stored embedded on the guestspot as JSONB and stays meaningful only while
// the spot is open or requested; after approval it is history.
type Applicant struct {
	ArtistID  string    `json:"artistId"`
	Message   string    `json:"message"`
	Portfolio []string  `json:"portfolio"`
	AppliedAt time.Time `json:"appliedAt"`
}

type Guestspot struct {
	BaseModel
	ParlorID     string          `gorm:"index;not null" json:"parlorId"`
	ArtistID     *string         `gorm:"index" json:"artistId,omitempty"`
	Status       GuestspotStatus `gorm:"not null;default:'open'" json:"status"`
	DateStart    time.Time       `gorm:"not null" json:"dateStart"`
	DateEnd      time.Time       `gorm:"not null" json:"dateEnd"`
	Description  string          `json:"description"`
	Requirements string          `json:"requirements"`
	PriceInfo    string          `json:"priceInfo"`
	Applicants   datatypes.JSON  `gorm:"type:jsonb" json:"applicants"`
}

// ApplicantList decodes the embedded applicants column. A NULL column reads
// as an empty list.
func (g *Guestspot) ApplicantList() ([]Applicant, error) {
	if len(g.Applicants) == 0 {
		return []Applicant{}, nil
	}
	var applicants []Applicant
	if err := json.Unmarshal(g.Applicants, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

func (g *Guestspot) SetApplicantList(applicants []Applicant) error {
	raw, err := json.Marshal(applicants)
	if err != nil {
		return err
	}
	g.Applicants = datatypes.JSON(raw)
	return nil
}

// HasApplicant reports whether the artist already applied.
func (g *Guestspot) HasApplicant(artistID string) (bool, error) {
	applicants, err := g.ApplicantList()
	if err != nil {
		return false, err
	}
	for _, a := range applicants {
		if a.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}
