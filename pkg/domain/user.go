package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// UserRole represents the permission level of a user account.
type UserRole string

const (
	// RoleUser is a regular customer account.
	RoleUser UserRole = "user"
	// RoleManager can run shipment syncs and other back-office operations.
	RoleManager UserRole = "manager"
	// RoleAdmin has full administrative access, including catalog writes.
	RoleAdmin UserRole = "admin"
	// RoleCS is a customer-support account.
	RoleCS UserRole = "cs"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive is a usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive is a disabled account; logins are rejected.
	UserStatusInactive UserStatus = "inactive"
	// UserStatusDeleted marks an account removed by the user or an admin.
	UserStatusDeleted UserStatus = "deleted"
)

// User represents a customer or staff account.
// PasswordHash is the bcrypt hash of the account password and must never be
// serialized to API responses.
type User struct {
	ID UserID `json:"id"`

	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	Nickname    string `json:"nickname,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	Role   UserRole   `json:"role"`
	Status UserStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }

// IsStaff reports whether the account holds a back-office role.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleCS
}
