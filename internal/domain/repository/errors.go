package repository

import "errors"

var (
	// ErrNotFound is returned by lookups that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by conditional updates that lost the race,
	// e.g. resolving a leave request that is no longer pending.
	ErrConflict = errors.New("conflict")
)
