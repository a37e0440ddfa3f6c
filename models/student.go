package models

type Student struct {
	User                `gorm:"embedded"`
	RoomNumber          string           `json:"roomNumber" gorm:"size:20"`
	ParentContactNumber string           `json:"parentContactNumber" gorm:"size:20"`
	WardenName          string           `json:"wardenName" gorm:"size:120"`
	WardenContactNumber string           `json:"wardenContactNumber" gorm:"size:20"`
	MessAttendance      []MessAttendance `json:"messAttendance" gorm:"foreignKey:StudentID;references:ID"`
}

// Defaults for optional registration fields.
const (
	NotAssigned = "Not assigned"
	NotProvided = "Not provided"
)

// MessAttendance is one day of mess attendance for one student. The composite
// key keeps at most one record per (student, date).
type MessAttendance struct {
	StudentID string `json:"-" gorm:"primaryKey;size:20"`
	Date      string `json:"date" gorm:"primaryKey;size:10"` // YYYY-MM-DD
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
}

// Meal names accepted by the attendance endpoints.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

func ValidMeal(m string) bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// AttendanceFor returns the attendance record for date, if any.
func (s *Student) AttendanceFor(date string) (MessAttendance, bool) {
	for _, a := range s.MessAttendance {
		if a.Date == date {
			return a, true
		}
	}
	return MessAttendance{}, false
}
