package repositories

import "errors"

var (
	// ErrNotFound covers both a syntactically invalid identifier and a valid
	// identifier with no active record behind it. Callers cannot distinguish
	// the two cases.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique field would collide with a
	// different active record, whether detected by the pre-check or reported
	// by the store's unique index at write time.
	ErrConflict = errors.New("unique field conflict")

	// ErrStoreNotInitialized is returned by every operation when the service
	// was started without a configured document store.
	ErrStoreNotInitialized = errors.New("store not initialized")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsStoreNotInitializedError(err error) bool {
	return errors.Is(err, ErrStoreNotInitialized)
}
