package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// MessHandler serves the mess-authority portal: attendance marking and menu
// management.
type MessHandler struct {
	mess     *services.MessService
	students *services.StudentService
}

func NewMessHandler(mess *services.MessService, students *services.StudentService) *MessHandler {
	return &MessHandler{mess: mess, students: students}
}

// GET /mess/students
func (h *MessHandler) ListStudents(c echo.Context) error {
	rows, err := h.students.GetAllStudents()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type markAttendanceReq struct {
	StudentID string `json:"studentId"`
	Date      string `json:"date"`
	Meal      string `json:"meal"`
	Attended  *bool  `json:"attended"`
}

// POST /mess/attendance/mark
func (h *MessHandler) MarkAttendance(c echo.Context) error {
	var req markAttendanceReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}

	errs := map[string]string{}
	if strings.TrimSpace(req.StudentID) == "" {
		errs["studentId"] = "studentId is required"
	}
	if !validDate(req.Date) {
		errs["date"] = "date must be YYYY-MM-DD"
	}
	if !models.ValidMeal(req.Meal) {
		errs["meal"] = "meal must be breakfast, lunch or dinner"
	}
	if req.Attended == nil {
		errs["attended"] = "attended is required"
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}

	student, err := h.mess.UpdateAttendance(c.Request().Context(), req.StudentID, req.Date, req.Meal, *req.Attended)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, student)
}

// GET /mess/menu
func (h *MessHandler) Menu(c echo.Context) error {
	items, err := h.mess.GetMenuItems()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// PUT /mess/menu/:id
func (h *MessHandler) UpdateMenuItem(c echo.Context) error {
	var patch store.MenuItemPatch
	if err := c.Bind(&patch); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	item, err := h.mess.UpdateMenuItem(c.Param("id"), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}
