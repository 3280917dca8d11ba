// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrUserAlreadyExists indicates that the user with the given email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = errors.New("invalid email or password")
)

// Role is the closed set of access roles known to the system.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RoleAdmin marks back-office users.
	RoleAdmin Role = "admin"
)

// User holds registered user data.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	HashedPassword string `json:"hashed_password"`
	Role           Role   `json:"role"`
}

// Requester is the resolved identity a protected operation acts on behalf of.
type Requester struct {
	UserID int64
	Email  string
	Role   Role
}

// IsAdmin reports whether the requester holds the admin role.
func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// CanOperate reports whether the requester may act on resources
// owned by the given user.
func (r Requester) CanOperate(ownerUserID int64) bool {
	return r.Role == RoleAdmin || r.UserID == ownerUserID
}
