package user

import (
	"time"

	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/google/uuid"
)

// Role represents a user's role within a rental company.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// IsValid returns true if the role is recognized.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

// User is the aggregate root for an account. The password hash is write-only:
// it never leaves the domain except through VerifyPassword-style comparison
// performed by the auth service.
type User struct {
	id           uuid.UUID
	email        string
	passwordHash string
	companyName  string
	companyID    string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new account with a pre-hashed password.
func NewUser(email, passwordHash, companyName, companyID string, role Role) (*User, error) {
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password hash is required")
	}
	if companyName == "" {
		return nil, domain.NewValidationError("company name is required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("invalid role: " + string(role))
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		companyName:  companyName,
		companyID:    companyID,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, email, passwordHash, companyName, companyID string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		companyName:  companyName,
		companyID:    companyID,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Getters.
func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CompanyName() string  { return u.companyName }
func (u *User) CompanyID() string    { return u.companyID }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
