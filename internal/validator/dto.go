package validator

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// UserUpdateRequest is the partial payload for updating a user. Nil fields
// are left unchanged.
type UserUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ContentCreateRequest is the payload for creating a content item.
type ContentCreateRequest struct {
	Title string `json:"title" validate:"required,min=1,max=500"`
	Slug  string `json:"slug" validate:"required,slug,max=255"`
}

// ContentUpdateRequest is the partial payload for updating a content item.
type ContentUpdateRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=500"`
	Slug  *string `json:"slug" validate:"omitempty,slug,max=255"`
}

// AssessmentCreateRequest is the payload for creating an assessment.
type AssessmentCreateRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=500"`
	CourseID string  `json:"course_id" validate:"required"`
	ModuleID *string `json:"module_id"`
}

// AssessmentUpdateRequest is the partial payload for updating an assessment.
type AssessmentUpdateRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=500"`
	CourseID *string `json:"course_id" validate:"omitempty,min=1"`
	ModuleID *string `json:"module_id"`
}
