package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/handlers"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func newAuthHandler(t *testing.T) *handlers.AuthHandler {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, store.Seed(st))
	auth := services.NewAuthService(st)
	return handlers.NewAuthHandler(auth, services.StaticOTP{}, "test-secret", zap.NewNop())
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSuccess(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/login", `{"username":"student1","password":"password123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "s1", resp.User.ID)
	assert.Equal(t, "student", resp.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/login", `{"username":"student1","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	// Too-short username and password never reach the auth service.
	c, rec := postJSON(e, "/auth/register",
		`{"username":"ab","password":"123","name":"X","email":"bad","role":"student"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "username")
	assert.Contains(t, body, "password")
	assert.Contains(t, body, "email")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/register",
		`{"username":"student1","password":"secret123","name":"Copy Cat","email":"cc@example.com","role":"mess"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_EXISTS")
}

func TestRegisterStudentSuccess(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/register",
		`{"username":"student2","password":"secret123","name":"Ravi Kumar","email":"ravi@example.com","role":"student","roomNumber":"B-210"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		User struct {
			ID         string `json:"id"`
			RoomNumber string `json:"roomNumber"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s2", resp.User.ID)
	assert.Equal(t, "B-210", resp.User.RoomNumber)
}

func TestResetPasswordWrongOTP(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/password/reset",
		`{"username":"student1","otp":"999999","newPassword":"fresh-pass"}`)
	require.NoError(t, h.ResetPassword(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_OTP")
}

func TestResetPasswordUnknownUsername(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/password/reset",
		`{"username":"ghost","otp":"123456","newPassword":"fresh-pass"}`)
	require.NoError(t, h.ResetPassword(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetPasswordFlow(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/auth/otp/request", `{"username":"student1"}`)
	require.NoError(t, h.RequestOTP(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = postJSON(e, "/auth/password/reset",
		`{"username":"student1","otp":"123456","newPassword":"fresh-pass"}`)
	require.NoError(t, h.ResetPassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = postJSON(e, "/auth/login", `{"username":"student1","password":"fresh-pass"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = postJSON(e, "/auth/login", `{"username":"student1","password":"password123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
