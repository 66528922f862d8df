package services

import (
	"context"
	"log/slog"

	"github.com/digitalt3/lms-core-api/internal/events"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

type contentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewContentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) ContentService {
	return &contentService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

func (s *contentService) List(ctx context.Context, params repositories.ListParams) (*models.ContentListResponse, error) {
	if errs := validateListParams(params); len(errs) > 0 {
		return nil, errs
	}

	result, err := s.repo.Content().List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]*models.ContentRead, 0, len(result.Items))
	for _, c := range result.Items {
		items = append(items, c.ToRead())
	}

	return &models.ContentListResponse{
		Items: items,
		Total: result.Total,
		Skip:  result.Skip,
		Limit: result.Limit,
	}, nil
}

func (s *contentService) Get(ctx context.Context, id string) (*models.ContentRead, error) {
	content, err := s.repo.Content().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("content", id)
		}
		return nil, err
	}
	return content.ToRead(), nil
}

func (s *contentService) Create(ctx context.Context, req *CreateContentRequest) (*models.ContentRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	content := &models.Content{
		Title: req.Title,
		Slug:  req.Slug,
	}

	if err := s.repo.Content().Create(ctx, content); err != nil {
		if repositories.IsConflictError(err) {
			return nil, NewConflictError("content", "slug")
		}
		return nil, err
	}

	s.logger.Info("content created", "content_id", content.ID)
	s.publish(ctx, "content", "created", content.ID, content.ToRead())

	return content.ToRead(), nil
}

func (s *contentService) Update(ctx context.Context, id string, req *UpdateContentRequest) (*models.ContentRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}

	content, err := s.repo.Content().Update(ctx, id, fields)
	if err != nil {
		switch {
		case repositories.IsNotFoundError(err):
			return nil, NewNotFoundError("content", id)
		case repositories.IsConflictError(err):
			return nil, NewConflictError("content", "slug")
		}
		return nil, err
	}

	if len(fields) > 0 {
		s.logger.Info("content updated", "content_id", id)
		s.publish(ctx, "content", "updated", id, content.ToRead())
	}

	return content.ToRead(), nil
}

func (s *contentService) Delete(ctx context.Context, id string) (*models.DeleteResponse, error) {
	if err := s.repo.Content().SoftDelete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("content", id)
		}
		return nil, err
	}

	s.logger.Info("content deleted", "content_id", id)
	s.publish(ctx, "content", "deleted", id, nil)

	return &models.DeleteResponse{Deleted: true, ID: id}, nil
}

func (s *contentService) publish(ctx context.Context, resource, action, id string, data any) {
	if err := s.publisher.Publish(ctx, events.NewEvent(resource, action, id, data)); err != nil {
		s.logger.Error("failed to publish event", "resource", resource, "action", action, "id", id, "error", err)
	}
}
