package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// StudentHandler serves the student portal. Every route is scoped to the
// authenticated student's own records; the id always comes from the token,
// never from the payload.
type StudentHandler struct {
	students *services.StudentService
	mess     *services.MessService
}

func NewStudentHandler(students *services.StudentService, mess *services.MessService) *StudentHandler {
	return &StudentHandler{students: students, mess: mess}
}

// GET /student/profile
func (h *StudentHandler) Profile(c echo.Context) error {
	student, err := h.students.GetStudentByID(currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, student)
}

// PUT /student/profile
func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	var patch store.StudentPatch
	if err := c.Bind(&patch); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	student, err := h.students.UpdateStudent(currentUserID(c), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, student)
}

type outpassReq struct {
	Reason   string `json:"reason"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

func validateOutpass(req *outpassReq) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Reason) == "" {
		errs["reason"] = "reason is required"
	}
	if !validDate(req.FromDate) {
		errs["fromDate"] = "fromDate must be YYYY-MM-DD"
	}
	if !validDate(req.ToDate) {
		errs["toDate"] = "toDate must be YYYY-MM-DD"
	}
	if len(errs) == 0 {
		from, _ := time.Parse("2006-01-02", req.FromDate)
		to, _ := time.Parse("2006-01-02", req.ToDate)
		if from.After(to) {
			errs["toDate"] = "toDate must not be before fromDate"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// POST /student/outpasses
func (h *StudentHandler) CreateOutpass(c echo.Context) error {
	var req outpassReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if errs := validateOutpass(&req); errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}

	o, err := h.students.CreateOutpass(services.OutpassRequest{
		StudentID:   currentUserID(c),
		StudentName: currentName(c),
		Reason:      strings.TrimSpace(req.Reason),
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

// GET /student/outpasses — newest first.
func (h *StudentHandler) ListOutpasses(c echo.Context) error {
	rows, err := h.students.GetOutpassesByStudentID(currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	reverseOutpasses(rows)
	return c.JSON(http.StatusOK, rows)
}

type complaintReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// POST /student/complaints
func (h *StudentHandler) CreateComplaint(c echo.Context) error {
	var req complaintReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	errs := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "description is required"
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}

	cm, err := h.students.CreateComplaint(services.ComplaintRequest{
		StudentID:   currentUserID(c),
		StudentName: currentName(c),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, cm)
}

// GET /student/complaints — newest first.
func (h *StudentHandler) ListComplaints(c echo.Context) error {
	rows, err := h.students.GetComplaintsByStudentID(currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	reverseComplaints(rows)
	return c.JSON(http.StatusOK, rows)
}

// GET /student/menu
func (h *StudentHandler) Menu(c echo.Context) error {
	items, err := h.mess.GetMenuItems()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GET /student/schedules
func (h *StudentHandler) Schedules(c echo.Context) error {
	rows, err := h.students.GetSchedules()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /student/gallery
func (h *StudentHandler) Gallery(c echo.Context) error {
	rows, err := h.students.GetHostelImages()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func reverseOutpasses(rows []models.Outpass) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

func reverseComplaints(rows []models.Complaint) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
