package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// MessService covers the mess-authority operations: daily attendance and the
// weekly menu.
type MessService struct {
	store    store.Store
	notifier NotificationSender
	log      *zap.Logger
}

func NewMessService(st store.Store, notifier NotificationSender, log *zap.Logger) *MessService {
	return &MessService{store: st, notifier: notifier, log: log}
}

// UpdateAttendance finds or creates the attendance record for (student,
// date). On create the two unnamed meals default to false; on update only
// the named meal changes. The student's parent is notified either way.
func (s *MessService) UpdateAttendance(ctx context.Context, studentID, date, meal string, attended bool) (models.Student, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return models.Student{}, err
	}

	rec, ok := student.AttendanceFor(date)
	if !ok {
		rec = models.MessAttendance{StudentID: studentID, Date: date}
	}
	switch meal {
	case models.MealBreakfast:
		rec.Breakfast = attended
	case models.MealLunch:
		rec.Lunch = attended
	case models.MealDinner:
		rec.Dinner = attended
	default:
		return models.Student{}, fmt.Errorf("unknown meal %q", meal)
	}

	updated, err := s.store.SetAttendance(studentID, rec)
	if err != nil {
		return models.Student{}, err
	}

	verb := "has missed"
	if attended {
		verb = "has taken"
	}
	s.notify(ctx, ParentNotification{
		StudentID:     updated.ID,
		StudentName:   updated.Name,
		ParentContact: updated.ParentContactNumber,
		Message:       fmt.Sprintf("Your ward %s %s on %s", verb, meal, date),
	})
	return updated, nil
}

func (s *MessService) GetMenuItems() ([]models.MenuItem, error) {
	return s.store.MenuItems()
}

func (s *MessService) UpdateMenuItem(id string, patch store.MenuItemPatch) (models.MenuItem, error) {
	return s.store.UpdateMenuItem(id, patch)
}

// notify is best-effort; a failed send is logged and swallowed so the store
// write it follows still succeeds from the caller's point of view.
func (s *MessService) notify(ctx context.Context, n ParentNotification) {
	if err := s.notifier.Send(ctx, n); err != nil {
		s.log.Warn("parent notification failed",
			zap.String("student_id", n.StudentID), zap.Error(err))
	}
}
