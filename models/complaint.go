package models

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// CanTransition reports whether a complaint may move from s to next. The
// lifecycle is strictly forward with no skipping: pending → in-progress →
// resolved. Resolved complaints are immutable.
func (s ComplaintStatus) CanTransition(next ComplaintStatus) bool {
	switch s {
	case ComplaintPending:
		return next == ComplaintInProgress
	case ComplaintInProgress:
		return next == ComplaintResolved
	}
	return false
}

type Complaint struct {
	ID          string          `json:"id" gorm:"primaryKey;size:20"`
	StudentID   string          `json:"studentId" gorm:"index;size:20;not null"`
	StudentName string          `json:"studentName" gorm:"size:120;not null"`
	Title       string          `json:"title" gorm:"size:200;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Status      ComplaintStatus `json:"status" gorm:"size:20;not null"`
	Response    string          `json:"response,omitempty" gorm:"type:text"`
	CreatedAt   time.Time       `json:"createdAt"`
}
