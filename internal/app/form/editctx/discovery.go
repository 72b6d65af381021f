package editctx

import (
	"fmt"
	"reflect"

	"github.com/light-bringer/formedit/internal/app/form/contracts"
)

// TagTracked is the struct tag marking a field for edit-state tracking.
// The tag value is the stable field name used in notifications.
const TagTracked = "track"

// DiscoverFields builds field bindings for every `track`-tagged field of a
// struct pointed to by record. Field discovery lives here, on the form
// side of the boundary: the tracker itself only ever sees the resolved
// (name, accessor) pairs.
func DiscoverFields(record any) ([]contracts.FieldBinding, error) {
	v := reflect.ValueOf(record)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, ErrInvalidRecord
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, ErrInvalidRecord
	}

	rt := elem.Type()
	seen := make(map[string]bool, rt.NumField())
	var bindings []contracts.FieldBinding

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, ok := sf.Tag.Lookup(TagTracked)
		if !ok || name == "" || name == "-" {
			continue
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%w: %s", ErrUnexportedField, sf.Name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = true

		fv := elem.Field(i)
		fieldName := name
		bindings = append(bindings, contracts.FieldBinding{
			Name: fieldName,
			Get: func() any {
				return fv.Interface()
			},
			Set: func(value any) error {
				if value == nil {
					switch fv.Kind() {
					case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
						fv.Set(reflect.Zero(fv.Type()))
						return nil
					}
					return fmt.Errorf("%w: field %q cannot hold nil", ErrTypeMismatch, fieldName)
				}
				rv := reflect.ValueOf(value)
				if !rv.Type().AssignableTo(fv.Type()) {
					return fmt.Errorf("%w: field %q wants %s, got %s", ErrTypeMismatch, fieldName, fv.Type(), rv.Type())
				}
				fv.Set(rv)
				return nil
			},
		})
	}

	if len(bindings) == 0 {
		return nil, ErrNoTrackedFields
	}
	return bindings, nil
}
