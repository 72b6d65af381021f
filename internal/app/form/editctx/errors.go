package editctx

import "errors"

var (
	ErrInvalidRecord   = errors.New("record must be a non-nil struct pointer")
	ErrNoTrackedFields = errors.New("record has no tracked fields")
	ErrUnexportedField = errors.New("tracked field must be exported")
	ErrDuplicateField  = errors.New("duplicate tracked field name")
	ErrTypeMismatch    = errors.New("value type does not match field type")
	ErrContextClosed   = errors.New("edit context is closed")
)
