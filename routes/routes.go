package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mukeshkdas03/hostel-management-system/handlers"
	"github.com/mukeshkdas03/hostel-management-system/metrics"
	"github.com/mukeshkdas03/hostel-management-system/middlewares"
)

// Handlers groups everything Register needs to wire the HTTP surface.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Student *handlers.StudentHandler
	Mess    *handlers.MessHandler
	Hostel  *handlers.HostelHandler
	Health  *handlers.HealthHandler
}

// Register wires all HTTP routes. Each portal lives under its own role-gated
// group.
func Register(e *echo.Echo, h Handlers, jwtSecret string) {
	// ===== Public =====
	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/otp/request", h.Auth.RequestOTP)
	e.POST("/auth/password/reset", h.Auth.ResetPassword)

	e.GET("/healthz", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	authMW := middlewares.RequireAuth(jwtSecret)

	e.GET("/auth/me", h.Auth.Me, authMW)

	// ===== Student portal =====
	student := e.Group("/student", authMW, middlewares.RequireRole("student"))
	student.GET("/profile", h.Student.Profile)
	student.PUT("/profile", h.Student.UpdateProfile)
	student.GET("/outpasses", h.Student.ListOutpasses)
	student.POST("/outpasses", h.Student.CreateOutpass)
	student.GET("/complaints", h.Student.ListComplaints)
	student.POST("/complaints", h.Student.CreateComplaint)
	student.GET("/menu", h.Student.Menu)
	student.GET("/schedules", h.Student.Schedules)
	student.GET("/gallery", h.Student.Gallery)

	// ===== Mess portal =====
	mess := e.Group("/mess", authMW, middlewares.RequireRole("mess"))
	mess.GET("/students", h.Mess.ListStudents)
	mess.POST("/attendance/mark", h.Mess.MarkAttendance)
	mess.GET("/menu", h.Mess.Menu)
	mess.PUT("/menu/:id", h.Mess.UpdateMenuItem)

	// ===== Hostel office portal =====
	hostel := e.Group("/hostel", authMW, middlewares.RequireRole("hostel"))
	hostel.GET("/students", h.Hostel.ListStudents)
	hostel.PUT("/students/:id", h.Hostel.UpdateStudent)
	hostel.GET("/outpasses", h.Hostel.ListOutpasses)
	hostel.GET("/outpasses/pending-count", h.Hostel.PendingOutpassCount)
	hostel.POST("/outpasses/:id/approve", h.Hostel.ApproveOutpass)
	hostel.POST("/outpasses/:id/reject", h.Hostel.RejectOutpass)
	hostel.GET("/complaints", h.Hostel.ListComplaints)
	hostel.PUT("/complaints/:id/status", h.Hostel.UpdateComplaintStatus)
}
