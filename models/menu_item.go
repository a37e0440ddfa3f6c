package models

// Day of week for the mess menu. Exactly one MenuItem exists per day.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Week lists the seven days in menu order.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Day) Valid() bool {
	for _, w := range Week {
		if d == w {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID        string `json:"id" gorm:"primaryKey;size:20"`
	Day       Day    `json:"day" gorm:"uniqueIndex;size:10;not null"`
	Breakfast string `json:"breakfast" gorm:"size:200"`
	Lunch     string `json:"lunch" gorm:"size:200"`
	Dinner    string `json:"dinner" gorm:"size:200"`
}
