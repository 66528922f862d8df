package services

import (
	"context"

	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/utils"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

// Request DTOs live next to their validation rules.
type (
	CreateUserRequest       = validator.UserCreateRequest
	UpdateUserRequest       = validator.UserUpdateRequest
	CreateContentRequest    = validator.ContentCreateRequest
	UpdateContentRequest    = validator.ContentUpdateRequest
	CreateAssessmentRequest = validator.AssessmentCreateRequest
	UpdateAssessmentRequest = validator.AssessmentUpdateRequest
)

type UserService interface {
	List(ctx context.Context, params repositories.ListParams) (*models.UserListResponse, error)
	Get(ctx context.Context, id string) (*models.UserRead, error)
	Create(ctx context.Context, req *CreateUserRequest) (*models.UserRead, error)
	Update(ctx context.Context, id string, req *UpdateUserRequest) (*models.UserRead, error)
	Delete(ctx context.Context, id string) (*models.DeleteResponse, error)
}

type ContentService interface {
	List(ctx context.Context, params repositories.ListParams) (*models.ContentListResponse, error)
	Get(ctx context.Context, id string) (*models.ContentRead, error)
	Create(ctx context.Context, req *CreateContentRequest) (*models.ContentRead, error)
	Update(ctx context.Context, id string, req *UpdateContentRequest) (*models.ContentRead, error)
	Delete(ctx context.Context, id string) (*models.DeleteResponse, error)
}

type AssessmentService interface {
	List(ctx context.Context, params repositories.ListParams) (*models.AssessmentListResponse, error)
	Get(ctx context.Context, id string) (*models.AssessmentRead, error)
	Create(ctx context.Context, req *CreateAssessmentRequest) (*models.AssessmentRead, error)
	Update(ctx context.Context, id string, req *UpdateAssessmentRequest) (*models.AssessmentRead, error)
	Delete(ctx context.Context, id string) (*models.DeleteResponse, error)
}

// ServiceManager aggregates the domain services.
type ServiceManager interface {
	User() UserService
	Content() ContentService
	Assessment() AssessmentService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// validateListParams rejects out-of-range pagination instead of clamping it.
func validateListParams(params repositories.ListParams) utils.ValidationErrors {
	var errs utils.ValidationErrors
	if params.Skip < 0 {
		errs = append(errs, utils.ValidationError{
			Field: "skip", Message: "must be greater than or equal to 0", Value: params.Skip, Rule: "min",
		})
	}
	if params.Limit < 1 || params.Limit > repositories.MaxLimit {
		errs = append(errs, utils.ValidationError{
			Field: "limit", Message: "must be between 1 and 200", Value: params.Limit, Rule: "range",
		})
	}
	return errs
}
