package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-keeper/internal/store"
	"github.com/MKhiriev/go-food-keeper/internal/validators"
)

// mapStoreError translates repository sentinels into service sentinels so the
// HTTP layer only depends on this package. Unknown errors are storage
// failures.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrFoodNotFound):
		return ErrFoodNotFound
	case errors.Is(err, store.ErrFoodForbidden):
		return ErrForbidden
	case errors.Is(err, store.ErrDuplicateBarcode):
		return ErrDuplicateBarcode
	case errors.Is(err, store.ErrBarcodeRequired):
		return fmt.Errorf("%w: %w", ErrInvalidFood, validators.FieldErrors{validators.FieldBarcode: "is required"})
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

// mapValidationError wraps validator failures in ErrInvalidFood. The
// validator's FieldErrors stay reachable through errors.As.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidFood, err)
}
