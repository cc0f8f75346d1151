package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole represents the privilege level stored on a user record
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// UserStatus represents the account status stored on a user record
type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

// User represents a registered account. Accounts are created on first
// sign-in and never hard-deleted; blocking flips the status flag instead.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	ExternalID string             `bson:"user_id" json:"user_id"`
	Photo      string             `bson:"photo" json:"photo"`
	BloodType  string             `bson:"bloodType" json:"bloodType"`
	District   string             `bson:"dist" json:"dist"`
	Upazila    string             `bson:"upazila" json:"upazila"`
	Role       UserRole           `bson:"role" json:"role"`
	Status     UserStatus         `bson:"status" json:"status"`
}

// IsAdmin reports whether the user carries the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBlocked reports whether the account has been blocked.
func (u *User) IsBlocked() bool {
	return u.Status == StatusBlocked
}

// Normalize fills in the defaults expected of a freshly signed-in account.
func (u *User) Normalize() {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
}
