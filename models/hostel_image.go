package models

// HostelImage is a read-only gallery entry.
type HostelImage struct {
	ID          string `json:"id" gorm:"primaryKey;size:20"`
	URL         string `json:"url" gorm:"size:255;not null"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description,omitempty" gorm:"size:255"`
}
