package repositories

import (
	"context"

	"github.com/digitalt3/lms-core-api/internal/models"
)

// Pagination bounds shared by every list operation. Out-of-range values are
// rejected, never clamped.
const (
	DefaultSkip  = 0
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListParams carries pagination for list operations.
type ListParams struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// DefaultListParams returns the pagination defaults.
func DefaultListParams() ListParams {
	return ListParams{Skip: DefaultSkip, Limit: DefaultLimit}
}

// ListResult is a page of active records plus the total active count
// (not the page size), echoing the requested skip/limit.
type ListResult[T any] struct {
	Items []*T
	Total int64
	Skip  int
	Limit int
}

// CrudRepository is the generic contract every domain resource implements.
// All read paths exclude soft-deleted records; identifiers are opaque and a
// malformed identifier collapses into ErrNotFound.
type CrudRepository[T any] interface {
	// List returns active records in insertion order.
	List(ctx context.Context, params ListParams) (*ListResult[T], error)

	// GetByID returns an active record or ErrNotFound.
	GetByID(ctx context.Context, id string) (*T, error)

	// Create assigns id and timestamps, enforces the unique-field constraint
	// against active records, and persists the record.
	Create(ctx context.Context, record *T) error

	// Update applies a partial field set. An empty field set is a no-op that
	// returns the current record unchanged.
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)

	// SoftDelete marks the record deleted. A second call on the same id
	// reports ErrNotFound because the record is no longer visible.
	SoftDelete(ctx context.Context, id string) error
}

type UserRepository interface {
	CrudRepository[models.User]
}

type ContentRepository interface {
	CrudRepository[models.Content]
}

type AssessmentRepository interface {
	CrudRepository[models.Assessment]
}
