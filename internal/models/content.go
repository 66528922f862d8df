package models

import (
	"time"

	"gorm.io/gorm"
)

// Content is a content catalog record (course/module/lesson title plus a
// URL-safe slug). Slug is unique among active records.
type Content struct {
	ID    string `json:"id" gorm:"primaryKey;size:36"`
	Title string `json:"title" gorm:"not null;size:500"`
	Slug  string `json:"slug" gorm:"not null;size:255;uniqueIndex:idx_content_slug_active,where:deleted_at IS NULL"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Content) TableName() string {
	return "content"
}

func (Content) ResourceName() string {
	return "content"
}

func (c *Content) GetID() string { return c.ID }

func (c *Content) SetID(id string) { c.ID = id }

func (c *Content) ToRead() *ContentRead {
	return &ContentRead{
		ID:        c.ID,
		Title:     c.Title,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: deletedAtOrNil(c.DeletedAt),
	}
}
