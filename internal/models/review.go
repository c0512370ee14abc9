package models

type Review struct {
	BaseModel
	UserID     string           `gorm:"not null;index" json:"userId"`
	TargetID   string           `gorm:"not null;index" json:"targetId"`
	TargetType ReviewTargetType `gorm:"not null;index" json:"targetType"`
	Rating     int              `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
}
