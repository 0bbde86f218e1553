package models

import (
	"errors"
	"time"
)

// User is the persisted account record. The bcrypt hash lives in the
// "password" column for compatibility with the original schema and is never
// serialized to clients.
type User struct {
	ID           int         `json:"id" gorm:"primaryKey"`
	Username     string      `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string      `json:"-" gorm:"column:password;size:255;not null"`
	Name         string      `json:"name" gorm:"size:100;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:320;not null"`
	CreatedAt    time.Time   `json:"created_at"`
	Portfolios   []Portfolio `json:"portfolios" gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

// Validate validates the user data for registration.
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if len(u.Username) > 50 {
		return errors.New("username must be 50 characters or less")
	}
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
