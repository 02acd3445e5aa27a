package models

import (
	"time"
)

// Role values. Moderators may curate tags on questions; admins may
// additionally create new canonical tags.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Bio       string    `gorm:"size:200" json:"bio"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanTag reports whether the user may add tags to or remove tags from
// questions.
func (u *User) CanTag() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}

// CanCreateTags reports whether the user may create tags that are not yet in
// the canonical vocabulary.
func (u *User) CanCreateTags() bool {
	return u.Role == RoleAdmin
}
