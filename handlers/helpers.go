package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func jsonError(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]any{"error": code})
}

// serviceError maps the expected failure taxonomy onto HTTP statuses.
// Anything unrecognised is a 500 and gets logged by the echo recoverer.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return jsonError(c, http.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, store.ErrDuplicateUsername):
		return jsonError(c, http.StatusConflict, "USERNAME_EXISTS")
	case errors.Is(err, services.ErrInvalidCredentials):
		return jsonError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	case errors.Is(err, services.ErrInvalidTransition):
		return jsonError(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION")
	case errors.Is(err, services.ErrInvalidRole):
		return jsonError(c, http.StatusBadRequest, "INVALID_ROLE")
	}
	return jsonError(c, http.StatusInternalServerError, "INTERNAL")
}

// Identity attached by the auth middleware.

func currentUserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

func currentName(c echo.Context) string {
	n, _ := c.Get("name").(string)
	return n
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
