package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// HostelHandler serves the hostel-office portal: outpass review, complaint
// handling and student record management.
type HostelHandler struct {
	hostel *services.HostelService
}

func NewHostelHandler(hostel *services.HostelService) *HostelHandler {
	return &HostelHandler{hostel: hostel}
}

// GET /hostel/outpasses?status=pending|approved|rejected
func (h *HostelHandler) ListOutpasses(c echo.Context) error {
	status := models.OutpassStatus(strings.TrimSpace(c.QueryParam("status")))
	if status != "" && !status.Valid() {
		return jsonError(c, http.StatusBadRequest, "INVALID_STATUS")
	}
	rows, err := h.hostel.GetOutpasses(status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /hostel/outpasses/pending-count
func (h *HostelHandler) PendingOutpassCount(c echo.Context) error {
	n, err := h.hostel.PendingOutpassCount()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

// POST /hostel/outpasses/:id/approve
func (h *HostelHandler) ApproveOutpass(c echo.Context) error {
	return h.decideOutpass(c, models.OutpassApproved)
}

// POST /hostel/outpasses/:id/reject
func (h *HostelHandler) RejectOutpass(c echo.Context) error {
	return h.decideOutpass(c, models.OutpassRejected)
}

func (h *HostelHandler) decideOutpass(c echo.Context, status models.OutpassStatus) error {
	o, err := h.hostel.UpdateOutpassStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// GET /hostel/complaints?status=pending|in-progress|resolved
func (h *HostelHandler) ListComplaints(c echo.Context) error {
	status := models.ComplaintStatus(strings.TrimSpace(c.QueryParam("status")))
	if status != "" && !status.Valid() {
		return jsonError(c, http.StatusBadRequest, "INVALID_STATUS")
	}
	rows, err := h.hostel.GetComplaints(status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type complaintStatusReq struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// PUT /hostel/complaints/:id/status
func (h *HostelHandler) UpdateComplaintStatus(c echo.Context) error {
	var req complaintStatusReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	status := models.ComplaintStatus(strings.TrimSpace(req.Status))
	if status != models.ComplaintInProgress && status != models.ComplaintResolved {
		return jsonError(c, http.StatusBadRequest, "INVALID_STATUS")
	}
	response := strings.TrimSpace(req.Response)
	// A response belongs to the resolution, not an intermediate step.
	if response != "" && status != models.ComplaintResolved {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "VALIDATION_FAILED",
			"fields": map[string]string{"response": "response may only be attached when resolving"},
		})
	}

	cm, err := h.hostel.UpdateComplaintStatus(c.Param("id"), status, response)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, cm)
}

// GET /hostel/students
func (h *HostelHandler) ListStudents(c echo.Context) error {
	rows, err := h.hostel.GetAllStudents()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// PUT /hostel/students/:id
func (h *HostelHandler) UpdateStudent(c echo.Context) error {
	var patch store.StudentPatch
	if err := c.Bind(&patch); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	student, err := h.hostel.UpdateStudentDetails(c.Param("id"), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, student)
}
