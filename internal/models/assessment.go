package models

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is an assessment record (quiz/test) attached to a course and
// optionally a module. Assessments declare no unique field.
type Assessment struct {
	ID       string  `json:"id" gorm:"primaryKey;size:36"`
	Title    string  `json:"title" gorm:"not null;size:500"`
	CourseID string  `json:"course_id" gorm:"not null;size:36;index"`
	ModuleID *string `json:"module_id" gorm:"size:36;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (Assessment) ResourceName() string {
	return "assessment"
}

func (a *Assessment) GetID() string { return a.ID }

func (a *Assessment) SetID(id string) { a.ID = id }

func (a *Assessment) ToRead() *AssessmentRead {
	return &AssessmentRead{
		ID:        a.ID,
		Title:     a.Title,
		CourseID:  a.CourseID,
		ModuleID:  a.ModuleID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		DeletedAt: deletedAtOrNil(a.DeletedAt),
	}
}
