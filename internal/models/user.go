// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's role in the system.
type Role string

// Role constants, ordered by privilege: employee < manager < admin.
const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is a member of the given role set. Authorization
// decisions use explicit set membership, never numeric comparison.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents a user in the system.
type User struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username       string              `json:"username" bson:"username" example:"team_1_manager"`
	Email          string              `json:"email" bson:"email" example:"user@example.com"`
	FullName       string              `json:"fullName,omitempty" bson:"fullName,omitempty" example:"John Doe"`
	HashedPassword string              `json:"-" bson:"hashedPassword"` // "-" = never include in JSON response
	Role           Role                `json:"role" bson:"role" example:"employee"`
	TeamID         *primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty" example:"507f1f77bcf86cd799439012"` // nil for admins
	AuthToken      string              `json:"-" bson:"authToken,omitempty"`                                                // single recognized session token
	IsActive       bool                `json:"isActive" bson:"isActive" example:"true"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=2,max=50" example:"jdoe"`
	Email    string  `json:"email" binding:"required,email" example:"user@example.com"`
	FullName string  `json:"fullName" binding:"omitempty,max=100" example:"John Doe"`
	Password string  `json:"password" binding:"required,min=6" example:"secret123"`
	Role     Role    `json:"role" binding:"required,role" example:"employee"`
	TeamID   *string `json:"teamId" binding:"omitempty" example:"507f1f77bcf86cd799439012"`
}

// UpdateUserRequest is the payload for partially updating a user. Only
// non-nil fields are applied.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=50" example:"jdoe2"`
	Email    *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	FullName *string `json:"fullName" binding:"omitempty,max=100" example:"Jane Doe"`
	Password *string `json:"password" binding:"omitempty,min=6" example:"newsecret"`
	Role     *Role   `json:"role" binding:"omitempty,role" example:"manager"`
	// TeamID distinguishes "not supplied" from "supplied as null", which
	// matters for the role-transition rules.
	TeamID OptionalID `json:"teamId" swaggertype:"string" example:"507f1f77bcf86cd799439012"`
}

// UserPatch is the storage-ready set of user field changes, produced by the
// service layer after the role-transition rules have been applied. SetTeam
// with a nil TeamID clears the team assignment.
type UserPatch struct {
	Username       *string
	Email          *string
	FullName       *string
	HashedPassword *string
	Role           *Role
	SetTeam        bool
	TeamID         *primitive.ObjectID
	IsActive       *bool
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"tokenType" example:"bearer"`
	User        User   `json:"user"`
}
