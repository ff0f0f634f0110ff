package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that the storage layer failed to load or save state.
// In-memory state is rolled back before this is returned, so callers may retry.
var ErrPersistence = errors.New("persistence failure")
