package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

// StudentInfo carries the optional student-only registration fields.
type StudentInfo struct {
	RoomNumber          string `json:"roomNumber"`
	ParentContactNumber string `json:"parentContactNumber"`
}

// AuthService validates credentials, creates accounts and resets passwords.
// It never sees plaintext passwords at rest; the credential store holds
// bcrypt hashes only.
type AuthService struct {
	store store.Store
}

func NewAuthService(st store.Store) *AuthService {
	return &AuthService{store: st}
}

// Login resolves the credential to the role-typed user record. A miss on
// either the username or the password comes back as ErrInvalidCredentials;
// the two cases are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (models.Account, error) {
	cred, err := s.store.CredentialByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.userByRole(cred.Role, cred.UserID)
}

// UserByRole loads the role-typed user record; used by Login and by the
// session-restore endpoint.
func (s *AuthService) UserByRole(role models.Role, id string) (models.Account, error) {
	return s.userByRole(role, id)
}

func (s *AuthService) userByRole(role models.Role, id string) (models.Account, error) {
	switch role {
	case models.RoleStudent:
		st, err := s.store.StudentByID(id)
		if err != nil {
			return nil, err
		}
		return st, nil
	case models.RoleMess:
		m, err := s.store.MessAuthorityByID(id)
		if err != nil {
			return nil, err
		}
		return m, nil
	case models.RoleHostel:
		h, err := s.store.HostelAuthorityByID(id)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, ErrInvalidRole
}

// Register creates the credential and the role-typed user record under a
// fresh role-scoped id. Duplicate usernames are rejected case-sensitively,
// regardless of role.
func (s *AuthService) Register(username, password, name, email string, role models.Role, info *StudentInfo) (models.Account, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if _, err := s.store.CredentialByUsername(username); err == nil {
		return nil, store.ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	id, err := s.store.AllocateUserID(role)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Credential first: its username uniqueness is the only duplicate guard,
	// so the user record must never exist without it.
	cred := models.Credential{Username: username, PasswordHash: string(hash), Role: role, UserID: id}
	if err := s.store.AddCredential(cred); err != nil {
		return nil, err
	}

	base := models.User{ID: id, Username: username, Name: name, Role: role, Email: email}

	var account models.Account
	switch role {
	case models.RoleStudent:
		st := models.Student{
			User:                base,
			RoomNumber:          models.NotAssigned,
			ParentContactNumber: models.NotProvided,
			WardenName:          models.NotAssigned,
			WardenContactNumber: models.NotProvided,
			MessAttendance:      []models.MessAttendance{},
		}
		if info != nil {
			if info.RoomNumber != "" {
				st.RoomNumber = info.RoomNumber
			}
			if info.ParentContactNumber != "" {
				st.ParentContactNumber = info.ParentContactNumber
			}
		}
		if err := s.store.AddStudent(st); err != nil {
			return nil, err
		}
		account = st
	case models.RoleMess:
		m := models.MessAuthority{User: base}
		if err := s.store.AddMessAuthority(m); err != nil {
			return nil, err
		}
		account = m
	case models.RoleHostel:
		h := models.HostelAuthority{User: base}
		if err := s.store.AddHostelAuthority(h); err != nil {
			return nil, err
		}
		account = h
	}
	return account, nil
}

// ResetPassword overwrites the stored hash in place. Unknown usernames come
// back as store.ErrNotFound and leave the credential store untouched.
func (s *AuthService) ResetPassword(username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.SetPassword(username, string(hash))
}
