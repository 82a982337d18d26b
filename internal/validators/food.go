// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-food-keeper/models"
)

// Field names used to extend the default validation of a food.
const (
	// FieldBarcode makes the barcode mandatory, as for a community
	// contribution which is deduplicated on it.
	FieldBarcode = "barcode"
)

const (
	minBarcodeLength = 6
	maxBarcodeLength = 14
)

// FoodValidator validates [models.FoodInput] and [models.FoodUpdate] with
// go-playground/validator struct tags. Errors are reported per JSON field
// name as [FieldErrors].
type FoodValidator struct {
	v *validator.Validate
}

// NewFoodValidator constructs a FoodValidator with the "notblank" and
// "barcode" tags registered.
func NewFoodValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// both registrations only fail on an empty tag name
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return IsBarcode(fl.Field().String())
	})

	return &FoodValidator{v: v}
}

// Validate implements [Validator]. Supported values are FoodInput and
// FoodUpdate, by value or pointer. [FieldBarcode] may be passed for a
// FoodInput to require a barcode.
func (f *FoodValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FoodInput:
		return f.validateFoodInput(value, fields...)
	case *models.FoodInput:
		if value == nil {
			return fmt.Errorf("%w: nil food input", ErrUnsupportedType)
		}
		return f.validateFoodInput(*value, fields...)
	case models.FoodUpdate:
		return f.validateFoodUpdate(value)
	case *models.FoodUpdate:
		if value == nil {
			return fmt.Errorf("%w: nil food update", ErrUnsupportedType)
		}
		return f.validateFoodUpdate(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (f *FoodValidator) validateFoodInput(input models.FoodInput, fields ...string) error {
	errs := f.structErrors(input)

	for _, field := range fields {
		switch field {
		case FieldBarcode:
			if input.Barcode == nil || models.NormalizeBarcode(*input.Barcode) == "" {
				errs = errs.with("barcode", "is required")
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *FoodValidator) validateFoodUpdate(update models.FoodUpdate) error {
	errs := f.structErrors(update)

	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		errs = errs.with("name", "must not be blank")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// structErrors runs the struct tags and converts the result. A non
// validation error (e.g. invalid argument) is reported under "_".
func (f *FoodValidator) structErrors(s any) FieldErrors {
	err := f.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"_": err.Error()}
	}

	errs := make(FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		errs[e.Field()] = friendlyMessage(e)
	}
	return errs
}

func (e FieldErrors) with(field, message string) FieldErrors {
	if e == nil {
		e = make(FieldErrors, 1)
	}
	if _, exists := e[field]; !exists {
		e[field] = message
	}
	return e
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "barcode":
		return fmt.Sprintf("must be %d to %d digits", minBarcodeLength, maxBarcodeLength)
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

// IsBarcode reports whether code, ignoring surrounding spaces, is empty or a
// run of 6 to 14 ASCII digits (EAN-8, UPC-A, EAN-13, GTIN-14 and shorter
// store codes).
func IsBarcode(code string) bool {
	code = models.NormalizeBarcode(code)
	if code == "" {
		return true
	}
	if len(code) < minBarcodeLength || len(code) > maxBarcodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
