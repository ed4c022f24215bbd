// Package user contains the user domain model for the School Events Hub.
// Users are keyed by their unique school email address.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Email is the primary key of a user.
type Email string

// IsValid checks that the email looks like an address.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\n\r")
}

// String returns the string representation of the email.
func (e Email) String() string {
	return string(e)
}

// Points represents a user's accumulated gamification points.
// The field on User is a denormalized cache: the ledger is the source of
// truth, and every ledger append must keep this value in sync.
type Points int

// IsValid checks that the points value is non-negative.
func (p Points) IsValid() bool {
	return p >= 0
}

// Add returns the points increased by delta.
func (p Points) Add(delta Points) Points {
	return p + delta
}

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Role determines what a user does at the school.
type Role string

const (
	// RoleStudent - a student; the only role that appears on the leaderboard.
	RoleStudent Role = "student"
	// RoleOrganizer - a teacher or staff member who runs events.
	RoleOrganizer Role = "organizer"
	// RoleAdmin - an administrator.
	RoleAdmin Role = "admin"
)

// IsValid checks that the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsRanked returns true if users with this role appear in the leaderboard.
func (r Role) IsRanked() bool {
	return r == RoleStudent
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: USER
// ══════════════════════════════════════════════════════════════════════════════

// User represents a member of the school community.
type User struct {
	// ID - internal unique identifier (UUID in string format).
	ID string

	// Name - display name.
	Name string

	// Email - unique school email address, the primary key.
	Email Email

	// Role - student, organizer or admin.
	Role Role

	// Organization - club or department, for organizers (optional).
	Organization string

	// ProfilePicture - URL of the avatar image (optional).
	ProfilePicture string

	// Points - cached total of all ledger entries for this email.
	// Must always equal the sum of points_earned across the user's
	// ledger records; only ledger appends mutate it.
	Points Points

	// CreatedAt - when the user record was created.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidEmail - the email is not a usable address.
	ErrInvalidEmail = errors.New("invalid email: must contain a single @ and no whitespace")

	// ErrInvalidName - the display name is empty or too long.
	ErrInvalidName = errors.New("invalid name: must be 1-100 chars")

	// ErrInvalidRole - the role is not one of student/organizer/admin.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidPoints - the points value is negative.
	ErrInvalidPoints = errors.New("invalid points: must be non-negative")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewUserParams contains the parameters for creating a user.
type NewUserParams struct {
	ID            string
	Name          string
	Email         Email
	Role          Role
	Organization  string
	InitialPoints Points
}

// NewUser creates a new user with validation of all fields.
func NewUser(params NewUserParams) (*User, error) {
	if params.ID == "" {
		return nil, errors.New("user id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	if !params.Email.IsValid() {
		return nil, ErrInvalidEmail
	}

	if !params.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	if !params.InitialPoints.IsValid() {
		return nil, ErrInvalidPoints
	}

	return &User{
		ID:           params.ID,
		Name:         name,
		Email:        params.Email,
		Role:         params.Role,
		Organization: params.Organization,
		Points:       params.InitialPoints,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// AddPoints increments the cached points total by the awarded amount.
// Awarded amounts come from the points policy and are never negative.
func (u *User) AddPoints(delta Points) {
	u.Points = u.Points.Add(delta)
}

// IsStudent returns true if the user is a student.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// String returns a string representation of the user for logging.
func (u *User) String() string {
	return fmt.Sprintf("User{Email: %s, Role: %s, Points: %d}", u.Email, u.Role, u.Points)
}

// Clone creates a copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
