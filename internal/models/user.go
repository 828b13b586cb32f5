// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole defines the marketplace role of a user account.
type UserRole string

const (
	// RoleCreator is an influencer who accepts invitations and submits content.
	RoleCreator UserRole = "creator"
	// RoleBrand is a brand account that owns campaigns and reviews submissions.
	RoleBrand UserRole = "brand"
	// RoleAdmin is a platform administrator.
	RoleAdmin UserRole = "admin"
)

// UserStatus defines the moderation state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates a usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusSuspended indicates an account disabled by an admin.
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a marketplace account (creator, brand, or admin).
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      UserRole       `gorm:"type:varchar(20);not null;default:'creator';index" json:"role"`
	Status    UserStatus     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsReviewer reports whether the user may review submissions at all.
// Campaign ownership is checked separately.
func (u *User) IsReviewer() bool {
	return u.Role == RoleBrand || u.Role == RoleAdmin
}
