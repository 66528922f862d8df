package services

import (
	"context"
	"log/slog"

	"github.com/digitalt3/lms-core-api/internal/events"
	"github.com/digitalt3/lms-core-api/internal/models"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

type assessmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewAssessmentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) AssessmentService {
	return &assessmentService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

func (s *assessmentService) List(ctx context.Context, params repositories.ListParams) (*models.AssessmentListResponse, error) {
	if errs := validateListParams(params); len(errs) > 0 {
		return nil, errs
	}

	result, err := s.repo.Assessment().List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]*models.AssessmentRead, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, a.ToRead())
	}

	return &models.AssessmentListResponse{
		Items: items,
		Total: result.Total,
		Skip:  result.Skip,
		Limit: result.Limit,
	}, nil
}

func (s *assessmentService) Get(ctx context.Context, id string) (*models.AssessmentRead, error) {
	assessment, err := s.repo.Assessment().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("assessment", id)
		}
		return nil, err
	}
	return assessment.ToRead(), nil
}

func (s *assessmentService) Create(ctx context.Context, req *CreateAssessmentRequest) (*models.AssessmentRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	assessment := &models.Assessment{
		Title:    req.Title,
		CourseID: req.CourseID,
		ModuleID: req.ModuleID,
	}

	if err := s.repo.Assessment().Create(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info("assessment created", "assessment_id", assessment.ID)
	s.publish(ctx, "assessment", "created", assessment.ID, assessment.ToRead())

	return assessment.ToRead(), nil
}

func (s *assessmentService) Update(ctx context.Context, id string, req *UpdateAssessmentRequest) (*models.AssessmentRead, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.CourseID != nil {
		fields["course_id"] = *req.CourseID
	}
	if req.ModuleID != nil {
		fields["module_id"] = *req.ModuleID
	}

	assessment, err := s.repo.Assessment().Update(ctx, id, fields)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("assessment", id)
		}
		return nil, err
	}

	if len(fields) > 0 {
		s.logger.Info("assessment updated", "assessment_id", id)
		s.publish(ctx, "assessment", "updated", id, assessment.ToRead())
	}

	return assessment.ToRead(), nil
}

func (s *assessmentService) Delete(ctx context.Context, id string) (*models.DeleteResponse, error) {
	if err := s.repo.Assessment().SoftDelete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewNotFoundError("assessment", id)
		}
		return nil, err
	}

	s.logger.Info("assessment deleted", "assessment_id", id)
	s.publish(ctx, "assessment", "deleted", id, nil)

	return &models.DeleteResponse{Deleted: true, ID: id}, nil
}

func (s *assessmentService) publish(ctx context.Context, resource, action, id string, data any) {
	if err := s.publisher.Publish(ctx, events.NewEvent(resource, action, id, data)); err != nil {
		s.logger.Error("failed to publish event", "resource", resource, "action", action, "id", id, "error", err)
	}
}
