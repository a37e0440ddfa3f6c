package models

import "time"

type OutpassStatus string

const (
	OutpassPending  OutpassStatus = "pending"
	OutpassApproved OutpassStatus = "approved"
	OutpassRejected OutpassStatus = "rejected"
)

func (s OutpassStatus) Valid() bool {
	switch s {
	case OutpassPending, OutpassApproved, OutpassRejected:
		return true
	}
	return false
}

// CanTransition reports whether an outpass may move from s to next. Approved
// and rejected are terminal.
func (s OutpassStatus) CanTransition(next OutpassStatus) bool {
	return s == OutpassPending && (next == OutpassApproved || next == OutpassRejected)
}

type Outpass struct {
	ID          string        `json:"id" gorm:"primaryKey;size:20"`
	StudentID   string        `json:"studentId" gorm:"index;size:20;not null"`
	StudentName string        `json:"studentName" gorm:"size:120;not null"`
	Reason      string        `json:"reason" gorm:"type:text"`
	FromDate    string        `json:"fromDate" gorm:"size:10;not null"` // YYYY-MM-DD
	ToDate      string        `json:"toDate" gorm:"size:10;not null"`   // YYYY-MM-DD
	Status      OutpassStatus `json:"status" gorm:"size:20;not null"`
	CreatedAt   time.Time     `json:"createdAt"`
}
