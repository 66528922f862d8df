package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a platform user record. Email is unique among active (non-deleted)
// users only; a soft-deleted user's email may be reused.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;size:36"`
	Name  string `json:"name" gorm:"not null;size:255"`
	Email string `json:"email" gorm:"not null;size:255;uniqueIndex:idx_users_email_active,where:deleted_at IS NULL"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// ResourceName is the label used in error messages and lifecycle events.
func (User) ResourceName() string {
	return "user"
}

func (u *User) GetID() string { return u.ID }

func (u *User) SetID(id string) { u.ID = id }

func (u *User) ToRead() *UserRead {
	return &UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: deletedAtOrNil(u.DeletedAt),
	}
}

func deletedAtOrNil(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
