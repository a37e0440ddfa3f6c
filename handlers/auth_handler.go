package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/metrics"
	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
)

const sessionTTL = 7 * 24 * time.Hour

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthHandler struct {
	auth      *services.AuthService
	otp       services.OTPIssuer
	jwtSecret string
	log       *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, otp services.OTPIssuer, jwtSecret string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, otp: otp, jwtSecret: jwtSecret, log: log}
}

func (h *AuthHandler) signJWT(sub string, role models.Role, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"name": name,
		"exp":  time.Now().Add(sessionTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

/* ====================== DTOs ====================== */

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerReq struct {
	Username            string `json:"username"`
	Password            string `json:"password"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	RoomNumber          string `json:"roomNumber"`
	ParentContactNumber string `json:"parentContactNumber"`
}

type otpReq struct {
	Username string `json:"username"`
}

type resetReq struct {
	Username    string `json:"username"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

/* ====================== Handlers ====================== */

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "MISSING_FIELDS")
	}

	account, err := h.auth.Login(username, req.Password)
	if err != nil {
		metrics.Logins.WithLabelValues("failure").Inc()
		return serviceError(c, err)
	}

	user := account.Base()
	token, err := h.signJWT(user.ID, user.Role, user.Name)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "TOKEN_GEN_FAILED")
	}
	metrics.Logins.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": account})
}

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.Join(strings.Fields(req.Name), " ")
	req.Email = strings.TrimSpace(req.Email)
	role := models.Role(strings.TrimSpace(req.Role))

	if errs := validateRegister(&req, role); errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "VALIDATION_FAILED", "fields": errs})
	}

	var info *services.StudentInfo
	if role == models.RoleStudent {
		info = &services.StudentInfo{
			RoomNumber:          strings.TrimSpace(req.RoomNumber),
			ParentContactNumber: strings.TrimSpace(req.ParentContactNumber),
		}
	}

	account, err := h.auth.Register(req.Username, req.Password, req.Name, req.Email, role, info)
	if err != nil {
		return serviceError(c, err)
	}
	metrics.Registrations.WithLabelValues(string(role)).Inc()
	h.log.Info("account registered",
		zap.String("user_id", account.Base().ID), zap.String("role", string(role)))

	return c.JSON(http.StatusCreated, map[string]any{"user": account})
}

func validateRegister(req *registerReq, role models.Role) map[string]string {
	errs := map[string]string{}
	if len(req.Username) < 3 {
		errs["username"] = "username must be at least 3 characters"
	}
	if len(req.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if !reEmail.MatchString(req.Email) {
		errs["email"] = "invalid email address"
	}
	if !role.Valid() {
		errs["role"] = "role must be student, mess or hostel"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// POST /auth/otp/request
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req otpReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return jsonError(c, http.StatusBadRequest, "MISSING_FIELDS")
	}

	code, err := h.otp.Issue(c.Request().Context(), username)
	if err != nil {
		return serviceError(c, err)
	}
	// Stand-in for a real SMS/email gateway: the code only goes to the log.
	h.log.Info("otp issued", zap.String("username", username), zap.String("code", code))

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// POST /auth/password/reset
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.OTP == "" {
		return jsonError(c, http.StatusBadRequest, "MISSING_FIELDS")
	}
	if len(req.NewPassword) < 6 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "VALIDATION_FAILED",
			"fields": map[string]string{"newPassword": "password must be at least 6 characters"},
		})
	}

	ok, err := h.otp.Verify(c.Request().Context(), username, req.OTP)
	if err != nil {
		return serviceError(c, err)
	}
	if !ok {
		return jsonError(c, http.StatusUnauthorized, "INVALID_OTP")
	}

	if err := h.auth.ResetPassword(username, req.NewPassword); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /auth/me — rebuilds the session identity from the token, the backend
// counterpart of the old localStorage restore.
func (h *AuthHandler) Me(c echo.Context) error {
	role, _ := c.Get("role").(string)
	account, err := h.auth.UserByRole(models.Role(role), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": account})
}
