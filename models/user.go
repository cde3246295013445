package models

import "time"

// UserStatus represents the lifecycle state of an account
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusDeleted   UserStatus = "DELETED"
)

// User represents an account in the system
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string     `json:"name" gorm:"size:255;not null"`
	Role      string     `json:"role" gorm:"size:50;default:'customer'"`
	Status    UserStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	Password  string     `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CanLogIn reports whether the account is in a state permitted to authenticate
func (u *User) CanLogIn() bool {
	return u.Status != UserStatusSuspended && u.Status != UserStatusDeleted
}
