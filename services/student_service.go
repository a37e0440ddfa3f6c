package services

import (
	"time"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// StudentService covers the student-scoped reads and writes: profile,
// outpass requests and complaints. Callers are responsible for passing the
// authenticated student's own id; the handlers take it from the JWT.
type StudentService struct {
	store store.Store
}

func NewStudentService(st store.Store) *StudentService {
	return &StudentService{store: st}
}

func (s *StudentService) GetStudentByID(id string) (models.Student, error) {
	return s.store.StudentByID(id)
}

func (s *StudentService) GetAllStudents() ([]models.Student, error) {
	return s.store.Students()
}

// UpdateStudent shallow-merges the non-nil patch fields into the record.
func (s *StudentService) UpdateStudent(id string, patch store.StudentPatch) (models.Student, error) {
	return s.store.UpdateStudent(id, patch)
}

// OutpassRequest is the caller-supplied part of a new outpass; id, status
// and createdAt are assigned here.
type OutpassRequest struct {
	StudentID   string
	StudentName string
	Reason      string
	FromDate    string
	ToDate      string
}

// CreateOutpass stores a new request. Status is always pending; the
// fromDate ≤ toDate check belongs to the validation layer in front of this.
func (s *StudentService) CreateOutpass(req OutpassRequest) (models.Outpass, error) {
	return s.store.AddOutpass(models.Outpass{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Reason:      req.Reason,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Status:      models.OutpassPending,
		CreatedAt:   time.Now(),
	})
}

type ComplaintRequest struct {
	StudentID   string
	StudentName string
	Title       string
	Description string
}

func (s *StudentService) CreateComplaint(req ComplaintRequest) (models.Complaint, error) {
	return s.store.AddComplaint(models.Complaint{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.ComplaintPending,
		CreatedAt:   time.Now(),
	})
}

func (s *StudentService) GetOutpassesByStudentID(studentID string) ([]models.Outpass, error) {
	return s.store.OutpassesByStudentID(studentID)
}

func (s *StudentService) GetComplaintsByStudentID(studentID string) ([]models.Complaint, error) {
	return s.store.ComplaintsByStudentID(studentID)
}

// Read-only student-portal collections.

func (s *StudentService) GetSchedules() ([]models.Schedule, error) {
	return s.store.Schedules()
}

func (s *StudentService) GetHostelImages() ([]models.HostelImage, error) {
	return s.store.HostelImages()
}
