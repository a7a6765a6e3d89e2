// Package view routes a visitor between the five screens of the app and gates
// the two dashboards behind the session's logged-in flags.
package view

import (
	"complaintbox/backend/internal/session"
	"fmt"
)

// Page identifies a screen.
type Page string

const (
	PageHome             Page = "Home"
	PageStudentLogin     Page = "StudentLogin"
	PageFacultyLogin     Page = "FacultyLogin"
	PageStudentDashboard Page = "StudentDashboard"
	PageFacultyDashboard Page = "FacultyDashboard"
)

var pages = []Page{PageHome, PageStudentLogin, PageFacultyLogin, PageStudentDashboard, PageFacultyDashboard}

// ParsePage maps a page name to a Page.
func ParsePage(name string) (Page, error) {
	for _, p := range pages {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q", name)
}

// guards maps each dashboard to the role it needs and the login page rendered
// in its place when that role is not logged in.
var guards = map[Page]struct {
	role  session.Role
	login Page
}{
	PageStudentDashboard: {session.RoleStudent, PageStudentLogin},
	PageFacultyDashboard: {session.RoleFaculty, PageFacultyLogin},
}

// Router is the view state of one visitor. It is not safe for concurrent use;
// Sessions serializes access.
type Router struct {
	current Page
	state   session.State
}

// NewRouter starts at Home with both flags cleared.
func NewRouter() *Router {
	return &Router{current: PageHome}
}

// Current returns the requested page, which may differ from the rendered one.
func (r *Router) Current() Page { return r.current }

// State returns a copy of the session flags.
func (r *Router) State() session.State { return r.state }

// Navigate moves to page. Returning Home ends the session.
func (r *Router) Navigate(page Page) {
	if page == PageHome {
		r.state.Reset()
	}
	r.current = page
}

// LoginSucceeded records a successful login for role and opens its dashboard.
func (r *Router) LoginSucceeded(role session.Role) {
	r.state.LogIn(role)
	switch role {
	case session.RoleStudent:
		r.current = PageStudentDashboard
	case session.RoleFaculty:
		r.current = PageFacultyDashboard
	}
}

// Resolve returns the page to render. A dashboard whose flag is not set
// renders its login page instead; Current is left unchanged.
func (r *Router) Resolve() Page {
	if g, ok := guards[r.current]; ok && !r.state.LoggedIn(g.role) {
		return g.login
	}
	return r.current
}

// Allowed reports whether the dashboard for role may be shown right now.
func (r *Router) Allowed(role session.Role) bool {
	return r.state.LoggedIn(role)
}

// LoginPageFor returns the login screen that guards role's dashboard.
func LoginPageFor(role session.Role) Page {
	if role == session.RoleFaculty {
		return PageFacultyLogin
	}
	return PageStudentLogin
}
