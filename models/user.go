// models/user.go
package models

import "time"

// Roles carried on the authenticated identity.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a platform user (student or administrator).
type User struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	ProfilePic   string    `bson:"profilePic" json:"profilePic"`
	Institution  string    `bson:"institution" json:"institution"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the subset of user fields attached to appointment and post reads.
type UserSummary struct {
	ID          string `bson:"id" json:"id"`
	FullName    string `bson:"fullName" json:"fullName"`
	Email       string `bson:"email" json:"email"`
	ProfilePic  string `bson:"profilePic" json:"profilePic"`
	Institution string `bson:"institution" json:"institution,omitempty"`
}
