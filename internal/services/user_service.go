package services

import (
	"context"
	"log/slog"

	"github.com/digitalt3/lms-core-api/internal/events"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) UserService {
	return &userService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

func (s *userService) List(ctx context.Context, params repositories.ListParams) (*models.UserListResponse, error) {
	if errs := validateListParams(params); len(errs) > 0 {
		return nil, errs
	}

	result, err := s.repo.User().List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]*models.UserRead, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, u.ToRead())
	}

	return &models.UserListResponse{
		Items: items,
		Total: result.Total,
		Skip:  result.Skip,
		Limit: result.Limit,
	}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.UserRead, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("user", id)
		}
		return nil, err
	}
	return user.ToRead(), nil
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.UserRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsConflictError(err) {
			return nil, NewConflictError("user", "email")
		}
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	s.publish(ctx, "user", "created", user.ID, user.ToRead())

	return user.ToRead(), nil
}

func (s *userService) Update(ctx context.Context, id string, req *UpdateUserRequest) (*models.UserRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}

	user, err := s.repo.User().Update(ctx, id, fields)
	if err != nil {
		switch {
		case repositories.IsNotFoundError(err):
			return nil, NewNotFoundError("user", id)
		case repositories.IsConflictError(err):
			return nil, NewConflictError("user", "email")
		}
		return nil, err
	}

	if len(fields) > 0 {
		s.logger.Info("user updated", "user_id", id)
		s.publish(ctx, "user", "updated", id, user.ToRead())
	}

	return user.ToRead(), nil
}

func (s *userService) Delete(ctx context.Context, id string) (*models.DeleteResponse, error) {
	if err := s.repo.User().SoftDelete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("user", id)
		}
		return nil, err
	}

	s.logger.Info("user deleted", "user_id", id)
	s.publish(ctx, "user", "deleted", id, nil)

	return &models.DeleteResponse{Deleted: true, ID: id}, nil
}

// publish sends a lifecycle event; failures are logged, never surfaced.
func (s *userService) publish(ctx context.Context, resource, action, id string, data any) {
	if err := s.publisher.Publish(ctx, events.NewEvent(resource, action, id, data)); err != nil {
		s.logger.Error("failed to publish event", "resource", resource, "action", action, "id", id, "error", err)
	}
}
