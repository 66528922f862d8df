package repositories

import "context"

// Repository aggregates the per-resource repositories.
type Repository interface {
	User() UserRepository
	Content() ContentRepository
	Assessment() AssessmentRepository

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close closes store connections.
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
