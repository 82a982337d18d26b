package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidFood is the root of every food validation failure.
	ErrInvalidFood = errors.New("invalid food")
)

// FieldErrors describes a failed food validation per JSON field name.
// It matches [ErrInvalidFood] with [errors.Is].
type FieldErrors map[string]string

// Error implements error. Fields are listed in name order.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e[k])
	}
	return ErrInvalidFood.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap returns [ErrInvalidFood].
func (e FieldErrors) Unwrap() error {
	return ErrInvalidFood
}
