package services

import (
	"context"
	"log/slog"

	"github.com/digitalt3/lms-core-api/internal/events"
	"github.com/digitalt3/lms-core-api/internal/repositories"
	"github.com/digitalt3/lms-core-api/internal/validator"
)

// DefaultServiceManager wires the domain services over a shared repository,
// validator and event publisher.
type DefaultServiceManager struct {
	user       UserService
	content    ContentService
	assessment AssessmentService

	publisher events.Publisher
	logger    *slog.Logger
}

func NewDefaultServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) ServiceManager {
	return &DefaultServiceManager{
		user:       NewUserService(repo, logger, v, publisher),
		content:    NewContentService(repo, logger, v, publisher),
		assessment: NewAssessmentService(repo, logger, v, publisher),
		publisher:  publisher,
		logger:     logger,
	}
}

func (m *DefaultServiceManager) User() UserService { return m.user }

func (m *DefaultServiceManager) Content() ContentService { return m.content }

func (m *DefaultServiceManager) Assessment() AssessmentService { return m.assessment }

func (m *DefaultServiceManager) Initialize(_ context.Context) error {
	m.logger.Info("services initialized")
	return nil
}

func (m *DefaultServiceManager) Shutdown(_ context.Context) error {
	return m.publisher.Close()
}
