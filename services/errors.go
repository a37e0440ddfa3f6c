package services

import "errors"

// Expected failures are sentinel errors matched with errors.Is; handlers map
// them to HTTP statuses. Unknown-id and duplicate-username failures surface
// as store.ErrNotFound and store.ErrDuplicateUsername.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
