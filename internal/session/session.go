// Package session holds the per-visitor login flags. Authentication is
// mocked: StubAuthenticator accepts every submission, so these flags gate
// navigation only and are not a security boundary.
package session

import "context"

// Role selects which dashboard a login unlocks.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// State is the pair of independent logged-in flags. It is never persisted.
type State struct {
	StudentLoggedIn bool `json:"student_logged_in"`
	FacultyLoggedIn bool `json:"faculty_logged_in"`
}

// LoggedIn reports the flag for role.
func (s State) LoggedIn(role Role) bool {
	switch role {
	case RoleStudent:
		return s.StudentLoggedIn
	case RoleFaculty:
		return s.FacultyLoggedIn
	default:
		return false
	}
}

// LogIn sets the flag for role.
func (s *State) LogIn(role Role) {
	switch role {
	case RoleStudent:
		s.StudentLoggedIn = true
	case RoleFaculty:
		s.FacultyLoggedIn = true
	}
}

// Reset clears both flags.
func (s *State) Reset() {
	*s = State{}
}

// Credentials is whatever the login form submitted.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Authenticator decides whether a login form submission succeeds.
type Authenticator interface {
	Authenticate(ctx context.Context, role Role, creds Credentials) (bool, error)
}

// StubAuthenticator treats every submission as a successful login. Replace it
// to add real credential checks; navigation does not depend on it.
type StubAuthenticator struct{}

func (StubAuthenticator) Authenticate(context.Context, Role, Credentials) (bool, error) {
	return true, nil
}
