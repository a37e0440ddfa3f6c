package models

// Schedule is a read-only college schedule entry shown on the student portal.
type Schedule struct {
	ID          string `json:"id" gorm:"primaryKey;size:20"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Date        string `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Description string `json:"description" gorm:"type:text"`
}
