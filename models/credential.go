package models

// Credential is internal to the auth service and never exposed over HTTP.
type Credential struct {
	Username     string `json:"-" gorm:"primaryKey;size:60"`
	PasswordHash string `json:"-" gorm:"not null"` // bcrypt hash
	Role         Role   `json:"-" gorm:"size:20;not null"`
	UserID       string `json:"-" gorm:"size:20;not null"`
}
