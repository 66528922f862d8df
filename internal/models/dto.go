package models

import "time"

// ===== RESOURCE RESPONSES =====

type UserRead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type UserListResponse struct {
	Items []*UserRead `json:"items"`
	Total int64       `json:"total"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
}

type ContentRead struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type ContentListResponse struct {
	Items []*ContentRead `json:"items"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

type AssessmentRead struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CourseID  string     `json:"course_id"`
	ModuleID  *string    `json:"module_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

type AssessmentListResponse struct {
	Items []*AssessmentRead `json:"items"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

// DeleteResponse confirms a soft delete.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ===== ERROR RESPONSES =====

// ErrorResponse is the canonical envelope for every fault the service
// returns. No handler emits ad-hoc error bodies.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details"`
	RequestID *string        `json:"request_id"`
}

// ===== HEALTH RESPONSES =====

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type DBHealthResponse struct {
	Status     string  `json:"status"`
	DurationMS float64 `json:"duration_ms"`
	Error      *string `json:"error"`
}
