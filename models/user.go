package models

// Role tags which portal a user belongs to. Immutable after registration.
type Role string

const (
	RoleStudent Role = "student"
	RoleMess    Role = "mess"
	RoleHostel  Role = "hostel"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleMess, RoleHostel:
		return true
	}
	return false
}

// User is the base shape shared by all three portal identities.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:20"`
	Username string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Role     Role   `json:"role" gorm:"size:20;not null"`
	Email    string `json:"email" gorm:"size:120"`
}

// MessAuthority and HostelAuthority carry no fields beyond the base user but
// stay distinct types so each portal works with its own shape.
type MessAuthority struct {
	User `gorm:"embedded"`
}

type HostelAuthority struct {
	User `gorm:"embedded"`
}

// Account is the closed set of role-typed user shapes. Consumers switch on
// the concrete type (or on Base().Role) rather than asserting blindly.
type Account interface {
	Base() User
}

func (u User) Base() User { return u }
