package store

import (
	"errors"

	"github.com/mukeshkdas03/hostel-management-system/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// StudentPatch holds the student fields that may be shallow-merged by an
// update. Nil fields are left untouched. ID and role are never patchable.
type StudentPatch struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	RoomNumber          *string `json:"roomNumber"`
	ParentContactNumber *string `json:"parentContactNumber"`
	WardenName          *string `json:"wardenName"`
	WardenContactNumber *string `json:"wardenContactNumber"`
}

// MenuItemPatch holds the editable menu fields. The day a menu item belongs
// to is fixed so the one-item-per-day invariant cannot be broken.
type MenuItemPatch struct {
	Breakfast *string `json:"breakfast"`
	Lunch     *string `json:"lunch"`
	Dinner    *string `json:"dinner"`
}

// Store owns every collection in the system. Services never cache records
// across calls; each read hands back a fresh copy. Implementations assign
// sequential ids: users role-prefixed per role (s2, m2, h2), outpasses o{n},
// complaints c{n}.
type Store interface {
	// Credentials (auth service only).
	CredentialByUsername(username string) (models.Credential, error)
	AddCredential(cred models.Credential) error
	SetPassword(username, passwordHash string) error

	// Users.
	AllocateUserID(role models.Role) (string, error)
	AddStudent(s models.Student) error
	AddMessAuthority(m models.MessAuthority) error
	AddHostelAuthority(h models.HostelAuthority) error
	StudentByID(id string) (models.Student, error)
	MessAuthorityByID(id string) (models.MessAuthority, error)
	HostelAuthorityByID(id string) (models.HostelAuthority, error)
	Students() ([]models.Student, error)
	UpdateStudent(id string, patch StudentPatch) (models.Student, error)
	// SetAttendance inserts or replaces the attendance record matching
	// rec.Date and returns the updated student.
	SetAttendance(studentID string, rec models.MessAttendance) (models.Student, error)

	// Outpasses. Add assigns the id and returns the stored record.
	AddOutpass(o models.Outpass) (models.Outpass, error)
	OutpassByID(id string) (models.Outpass, error)
	Outpasses() ([]models.Outpass, error)
	OutpassesByStudentID(studentID string) ([]models.Outpass, error)
	SaveOutpass(o models.Outpass) error

	// Complaints.
	AddComplaint(c models.Complaint) (models.Complaint, error)
	ComplaintByID(id string) (models.Complaint, error)
	Complaints() ([]models.Complaint, error)
	ComplaintsByStudentID(studentID string) ([]models.Complaint, error)
	SaveComplaint(c models.Complaint) error

	// Menu.
	AddMenuItem(item models.MenuItem) error
	MenuItems() ([]models.MenuItem, error)
	MenuItemByID(id string) (models.MenuItem, error)
	UpdateMenuItem(id string, patch MenuItemPatch) (models.MenuItem, error)

	// Read-only collections. Adds exist for seeding only.
	AddSchedule(sch models.Schedule) error
	Schedules() ([]models.Schedule, error)
	AddHostelImage(img models.HostelImage) error
	HostelImages() ([]models.HostelImage, error)
}

func (p StudentPatch) apply(s *models.Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.RoomNumber != nil {
		s.RoomNumber = *p.RoomNumber
	}
	if p.ParentContactNumber != nil {
		s.ParentContactNumber = *p.ParentContactNumber
	}
	if p.WardenName != nil {
		s.WardenName = *p.WardenName
	}
	if p.WardenContactNumber != nil {
		s.WardenContactNumber = *p.WardenContactNumber
	}
}

func (p MenuItemPatch) apply(m *models.MenuItem) {
	if p.Breakfast != nil {
		m.Breakfast = *p.Breakfast
	}
	if p.Lunch != nil {
		m.Lunch = *p.Lunch
	}
	if p.Dinner != nil {
		m.Dinner = *p.Dinner
	}
}
