package auth

import (
	"time"

	"go-payroll/internal/credential"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
)

// Menu lists what the role can do after login.
func (r Role) Menu() (title, actions string) {
	switch r {
	case RoleEmployee:
		return "Employee Dashboard", "View Payslip | Update Profile"
	case RoleManager:
		return "Manager Dashboard", "Approve Payslip | View Team Summary"
	default:
		return "", ""
	}
}

// User is a login identity. Regular employees and managers differ only in
// role, which is fixed by the constructor.
type User struct {
	username       string
	passwordDigest string
	role           Role
}

func NewRegularEmployee(username, passwordDigest string) User {
	return User{username: username, passwordDigest: passwordDigest, role: RoleEmployee}
}

func NewManager(username, passwordDigest string) User {
	return User{username: username, passwordDigest: passwordDigest, role: RoleManager}
}

func (u User) Username() string { return u.username }
func (u User) Role() Role       { return u.role }

// Authenticate reports whether username and password belong to u.
func (u User) Authenticate(h credential.Hasher, username, password string) bool {
	if u.username == "" || u.username != username {
		return false
	}
	return credential.Matches(h, password, u.passwordDigest)
}

type Session struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Role      Role          `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	TTL       time.Duration `json:"ttl"`
}

// IsExpired is true once more than TTL has passed since creation.
func (s Session) IsExpired(now time.Time) bool {
	return now.Sub(s.CreatedAt) > s.TTL
}

func (s Session) String() string {
	return "Session active for user: " + s.Username
}
