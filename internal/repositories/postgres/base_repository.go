package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/digitalt3/lms-core-api/internal/cache"
	"github.com/digitalt3/lms-core-api/internal/repositories"
)

// Record constrains the pointer side of a persisted resource type.
type Record[T any] interface {
	*T
	GetID() string
	SetID(id string)
	ResourceName() string
}

// baseRepository implements the generic CRUD contract shared by all domain
// resources. Soft-deleted records are filtered by gorm's DeletedAt scoping on
// every query, so no call site can bypass the visibility rule.
type baseRepository[T any, PT Record[T]] struct {
	db          *gorm.DB
	cacheHelper *cache.Helper

	// uniqueColumn names the single unique field of the resource, or "" when
	// the resource declares none. Uniqueness is enforced among active records
	// only; the matching partial index closes the check-then-insert race.
	uniqueColumn string
	uniqueValue  func(PT) string
}

func newBaseRepository[T any, PT Record[T]](db *gorm.DB, redisClient *redis.Client, cachePrefix, uniqueColumn string, uniqueValue func(PT) string) *baseRepository[T, PT] {
	return &baseRepository[T, PT]{
		db:           db,
		cacheHelper:  cache.NewHelper(redisClient, cachePrefix, cache.DefaultTTL),
		uniqueColumn: uniqueColumn,
		uniqueValue:  uniqueValue,
	}
}

func (r *baseRepository[T, PT]) List(ctx context.Context, params repositories.ListParams) (*repositories.ListResult[T], error) {
	if r.db == nil {
		return nil, repositories.ErrStoreNotInitialized
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	var items []*T
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &repositories.ListResult[T]{
		Items: items,
		Total: total,
		Skip:  params.Skip,
		Limit: params.Limit,
	}, nil
}

func (r *baseRepository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	if r.db == nil {
		return nil, repositories.ErrStoreNotInitialized
	}
	// A malformed identifier is indistinguishable from an absent record.
	if _, err := uuid.Parse(id); err != nil {
		return nil, repositories.ErrNotFound
	}

	var cached T
	if err := r.cacheHelper.Get(ctx, id, &cached); err == nil {
		return &cached, nil
	}

	var record T
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	_ = r.cacheHelper.Set(ctx, id, &record)

	return &record, nil
}

func (r *baseRepository[T, PT]) Create(ctx context.Context, record *T) error {
	if r.db == nil {
		return repositories.ErrStoreNotInitialized
	}

	pt := PT(record)
	if pt.GetID() == "" {
		pt.SetID(uuid.New().String())
	}

	if r.uniqueColumn != "" {
		var count int64
		err := r.db.WithContext(ctx).Model(new(T)).
			Where(r.uniqueColumn+" = ?", r.uniqueValue(pt)).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check uniqueness: %w", err)
		}
		if count > 0 {
			return repositories.ErrConflict
		}
	}

	if err := r.db.WithContext(ctx).Create(pt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrConflict
		}
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

func (r *baseRepository[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if r.db == nil {
		return nil, repositories.ErrStoreNotInitialized
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, repositories.ErrNotFound
	}

	var current T
	if err := r.db.WithContext(ctx).First(&current, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	// No-op update: the current record comes back untouched, timestamps
	// included.
	if len(fields) == 0 {
		return &current, nil
	}

	if r.uniqueColumn != "" {
		if v, ok := fields[r.uniqueColumn]; ok && fmt.Sprint(v) != r.uniqueValue(PT(&current)) {
			var count int64
			err := r.db.WithContext(ctx).Model(new(T)).
				Where(r.uniqueColumn+" = ? AND id <> ?", v, id).
				Count(&count).Error
			if err != nil {
				return nil, fmt.Errorf("failed to check uniqueness: %w", err)
			}
			if count > 0 {
				return nil, repositories.ErrConflict
			}
		}
	}

	err := r.db.WithContext(ctx).Model(PT(&current)).Updates(fields).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrConflict
		}
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	_ = r.cacheHelper.Delete(ctx, id)

	var updated T
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload record: %w", err)
	}
	return &updated, nil
}

func (r *baseRepository[T, PT]) SoftDelete(ctx context.Context, id string) error {
	if r.db == nil {
		return repositories.ErrStoreNotInitialized
	}
	if _, err := uuid.Parse(id); err != nil {
		return repositories.ErrNotFound
	}

	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("failed to soft delete record: %w", res.Error)
	}
	// An already-deleted record is filtered out by the DeletedAt scope, so a
	// repeat delete lands here as well.
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	_ = r.cacheHelper.Delete(ctx, id)

	return nil
}
