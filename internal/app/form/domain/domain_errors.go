package domain

import "errors"

// Domain errors as sentinel values. All of them are programming-contract
// violations of the tracker lifecycle, never transient conditions.
var (
	ErrAlreadyAttached = errors.New("tracker is already attached")
	ErrNotAttached     = errors.New("tracker is not attached")
	ErrTrackerDetached = errors.New("tracker has been detached")
	ErrNoFields        = errors.New("at least one field binding is required")
	ErrNilGetter       = errors.New("field binding has no getter")
)
