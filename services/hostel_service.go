package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// HostelService covers the hostel-office operations: reviewing outpasses,
// working complaints and editing student records.
type HostelService struct {
	store    store.Store
	students *StudentService
	notifier NotificationSender
	log      *zap.Logger
}

func NewHostelService(st store.Store, students *StudentService, notifier NotificationSender, log *zap.Logger) *HostelService {
	return &HostelService{store: st, students: students, notifier: notifier, log: log}
}

// GetOutpasses returns all outpasses in store order, or only those matching
// the status when one is given.
func (s *HostelService) GetOutpasses(status models.OutpassStatus) ([]models.Outpass, error) {
	all, err := s.store.Outpasses()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := []models.Outpass{}
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// PendingOutpassCount backs the office dashboard badge.
func (s *HostelService) PendingOutpassCount() (int, error) {
	pending, err := s.GetOutpasses(models.OutpassPending)
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// UpdateOutpassStatus decides a pending request. Approved and rejected are
// terminal; deciding anything but a pending outpass is ErrInvalidTransition.
// The owning student's parent is notified of the decision.
func (s *HostelService) UpdateOutpassStatus(ctx context.Context, id string, status models.OutpassStatus) (models.Outpass, error) {
	o, err := s.store.OutpassByID(id)
	if err != nil {
		return models.Outpass{}, err
	}
	if !o.Status.CanTransition(status) {
		return models.Outpass{}, fmt.Errorf("outpass %s is %s: %w", id, o.Status, ErrInvalidTransition)
	}
	o.Status = status
	if err := s.store.SaveOutpass(o); err != nil {
		return models.Outpass{}, err
	}

	if student, err := s.store.StudentByID(o.StudentID); err == nil {
		s.notify(ctx, ParentNotification{
			StudentID:     student.ID,
			StudentName:   student.Name,
			ParentContact: student.ParentContactNumber,
			Message:       fmt.Sprintf("Outpass request from %s to %s has been %s", o.FromDate, o.ToDate, status),
		})
	}
	return o, nil
}

// GetComplaints mirrors GetOutpasses.
func (s *HostelService) GetComplaints(status models.ComplaintStatus) ([]models.Complaint, error) {
	all, err := s.store.Complaints()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := []models.Complaint{}
	for _, c := range all {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateComplaintStatus moves a complaint one step forward. The lifecycle is
// pending → in-progress → resolved with no skipping or reverting; a response
// is attached only on the transition to resolved.
func (s *HostelService) UpdateComplaintStatus(id string, status models.ComplaintStatus, response string) (models.Complaint, error) {
	c, err := s.store.ComplaintByID(id)
	if err != nil {
		return models.Complaint{}, err
	}
	if !c.Status.CanTransition(status) {
		return models.Complaint{}, fmt.Errorf("complaint %s is %s: %w", id, c.Status, ErrInvalidTransition)
	}
	c.Status = status
	if status == models.ComplaintResolved && response != "" {
		c.Response = response
	}
	if err := s.store.SaveComplaint(c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

// UpdateStudentDetails delegates to the student service.
func (s *HostelService) UpdateStudentDetails(id string, patch store.StudentPatch) (models.Student, error) {
	return s.students.UpdateStudent(id, patch)
}

func (s *HostelService) GetAllStudents() ([]models.Student, error) {
	return s.students.GetAllStudents()
}

func (s *HostelService) notify(ctx context.Context, n ParentNotification) {
	if err := s.notifier.Send(ctx, n); err != nil {
		s.log.Warn("parent notification failed",
			zap.String("student_id", n.StudentID), zap.Error(err))
	}
}
