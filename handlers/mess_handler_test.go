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
	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func newMessHandler(t *testing.T) *handlers.MessHandler {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, store.Seed(st))
	mess := services.NewMessService(st, services.NewLogNotifier(zap.NewNop()), zap.NewNop())
	return handlers.NewMessHandler(mess, services.NewStudentService(st))
}

func asMess(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "m1")
	c.Set("role", "mess")
	c.Set("name", "Mike Wilson")
	return c, rec
}

func TestMarkAttendanceValidation(t *testing.T) {
	h := newMessHandler(t)
	e := echo.New()

	c, rec := asMess(e, http.MethodPost, "/mess/attendance/mark",
		`{"studentId":"","date":"10-02-2024","meal":"brunch"}`)
	require.NoError(t, h.MarkAttendance(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "studentId")
	assert.Contains(t, body, "date")
	assert.Contains(t, body, "meal")
	assert.Contains(t, body, "attended")
}

func TestMarkAttendanceReturnsStudent(t *testing.T) {
	h := newMessHandler(t)
	e := echo.New()

	c, rec := asMess(e, http.MethodPost, "/mess/attendance/mark",
		`{"studentId":"s1","date":"2024-02-10","meal":"lunch","attended":true}`)
	require.NoError(t, h.MarkAttendance(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var st models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	day, ok := st.AttendanceFor("2024-02-10")
	require.True(t, ok)
	assert.True(t, day.Lunch)
	assert.False(t, day.Breakfast)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	h := newMessHandler(t)
	e := echo.New()

	c, rec := asMess(e, http.MethodPost, "/mess/attendance/mark",
		`{"studentId":"s42","date":"2024-02-10","meal":"dinner","attended":false}`)
	require.NoError(t, h.MarkAttendance(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMenuItemEndpoint(t *testing.T) {
	h := newMessHandler(t)
	e := echo.New()

	c, rec := asMess(e, http.MethodPut, "/mess/menu/m1", `{"breakfast":"Upma, Coffee"}`)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	require.NoError(t, h.UpdateMenuItem(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var item models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Upma, Coffee", item.Breakfast)

	c, rec = asMess(e, http.MethodPut, "/mess/menu/m42", `{"lunch":"Thali"}`)
	c.SetParamNames("id")
	c.SetParamValues("m42")
	require.NoError(t, h.UpdateMenuItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
