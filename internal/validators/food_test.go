package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validInput() models.FoodInput {
	return models.FoodInput{
		Name:             "Peanut butter",
		ServingSizeValue: 32,
		ServingSizeUnit:  models.UnitGrams,
		Calories:         ptr(190.0),
		Protein:          ptr(7.0),
		Barcode:          ptr("0051500255162"),
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalidFood)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	return fe
}

func TestFoodValidator_ValidInput(t *testing.T) {
	v := NewFoodValidator()

	require.NoError(t, v.Validate(context.Background(), validInput()))
	in := validInput()
	require.NoError(t, v.Validate(context.Background(), &in, FieldBarcode))
}

func TestFoodValidator_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.FoodInput)
		field  string
	}{
		{name: "missing name", mutate: func(in *models.FoodInput) { in.Name = "" }, field: "name"},
		{name: "blank name", mutate: func(in *models.FoodInput) { in.Name = "   " }, field: "name"},
		{name: "zero serving", mutate: func(in *models.FoodInput) { in.ServingSizeValue = 0 }, field: "serving_size_value"},
		{name: "negative serving", mutate: func(in *models.FoodInput) { in.ServingSizeValue = -1 }, field: "serving_size_value"},
		{name: "unknown unit", mutate: func(in *models.FoodInput) { in.ServingSizeUnit = "oz" }, field: "serving_size_unit"},
		{name: "missing unit", mutate: func(in *models.FoodInput) { in.ServingSizeUnit = "" }, field: "serving_size_unit"},
		{name: "missing calories", mutate: func(in *models.FoodInput) { in.Calories = nil }, field: "calories"},
		{name: "negative calories", mutate: func(in *models.FoodInput) { in.Calories = ptr(-5.0) }, field: "calories"},
		{name: "negative sodium", mutate: func(in *models.FoodInput) { in.Sodium = ptr(-1.0) }, field: "sodium"},
		{name: "letters in barcode", mutate: func(in *models.FoodInput) { in.Barcode = ptr("ABC12345") }, field: "barcode"},
		{name: "short barcode", mutate: func(in *models.FoodInput) { in.Barcode = ptr("123") }, field: "barcode"},
		{name: "unknown source", mutate: func(in *models.FoodInput) { in.Source = "usda" }, field: "source"},
	}

	v := NewFoodValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			fe := fieldErrors(t, v.Validate(context.Background(), in))
			assert.Contains(t, fe, tt.field)
		})
	}
}

func TestFoodValidator_ZeroCaloriesIsValid(t *testing.T) {
	in := validInput()
	in.Calories = ptr(0.0)

	assert.NoError(t, NewFoodValidator().Validate(context.Background(), in))
}

func TestFoodValidator_BarcodeRequired(t *testing.T) {
	v := NewFoodValidator()

	for _, code := range []*string{nil, ptr("  ")} {
		in := validInput()
		in.Barcode = code

		require.NoError(t, v.Validate(context.Background(), in))
		fe := fieldErrors(t, v.Validate(context.Background(), in, FieldBarcode))
		assert.Equal(t, "is required", fe["barcode"])
	}
}

func TestFoodValidator_UnknownField(t *testing.T) {
	err := NewFoodValidator().Validate(context.Background(), validInput(), "calories")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFoodValidator_Update(t *testing.T) {
	v := NewFoodValidator()
	unit := models.ServingUnit("cup")

	require.NoError(t, v.Validate(context.Background(), models.FoodUpdate{Name: ptr("Toast"), Calories: ptr(80.0)}))
	require.NoError(t, v.Validate(context.Background(), models.FoodUpdate{}), "an empty update is a no-op")

	fe := fieldErrors(t, v.Validate(context.Background(), &models.FoodUpdate{
		Name:             ptr("  "),
		ServingSizeValue: ptr(0.0),
		ServingSizeUnit:  &unit,
	}))
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "serving_size_value")
	assert.Contains(t, fe, "serving_size_unit")
}

func TestFoodValidator_UnsupportedType(t *testing.T) {
	v := NewFoodValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "food"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.FoodInput)(nil)), ErrUnsupportedType)
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"name": "is required", "calories": "is required"}
	assert.Equal(t, "invalid food: calories is required; name is required", err.Error())
}

func TestIsBarcode(t *testing.T) {
	for code, want := range map[string]bool{
		"":                true,
		"12345678":        true,
		" 012345678905 ":  true,
		"12345678901234":  true,
		"123456789012345": false,
		"12345":           false,
		"1234-5678":       false,
		"١٢٣٤٥٦٧٨":        false,
	} {
		assert.Equal(t, want, IsBarcode(code), code)
	}
}
