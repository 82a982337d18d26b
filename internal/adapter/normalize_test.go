package adapter

import (
	"testing"

	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func normalize(t *testing.T, payload, barcode string) (models.NutritionRecord, bool) {
	t.Helper()
	require.True(t, gjson.Valid(payload), "test payload must be valid JSON")
	return NormalizeProduct(gjson.Parse(payload), barcode)
}

func TestNormalizeProduct_Per100gFallback(t *testing.T) {
	rec, ok := normalize(t, `{
		"product_name": "Oat Milk",
		"serving_quantity": "250",
		"nutriments": {
			"energy-kcal_100g": 250,
			"fat_100g": 10,
			"sodium_100g": 0.5
		}
	}`, "0123456789012")
	require.True(t, ok)

	assert.Equal(t, 100.0, rec.ServingSize.Value)
	assert.Equal(t, models.UnitGrams, rec.ServingSize.Unit)
	assert.Equal(t, 250.0, rec.Calories)
	require.NotNil(t, rec.TotalFat)
	assert.Equal(t, 10.0, *rec.TotalFat)
	require.NotNil(t, rec.Sodium)
	assert.Equal(t, 500.0, *rec.Sodium)
	assert.Equal(t, models.SourceOpenFoodFacts, rec.Source)
	assert.Equal(t, models.TierExternal, rec.Tier)
	require.NotNil(t, rec.Barcode)
	assert.Equal(t, "0123456789012", *rec.Barcode)
}

func TestNormalizeProduct_SodiumScaleFactorIsExactlyThousand(t *testing.T) {
	rec, ok := normalize(t, `{"nutriments": {"energy-kcal_100g": 10, "sodium_100g": 0.4, "cholesterol_100g": 0.0123}}`, "1")
	require.True(t, ok)

	require.NotNil(t, rec.Sodium)
	assert.Equal(t, 400.0, *rec.Sodium)
	require.NotNil(t, rec.Cholesterol)
	assert.Equal(t, 12.0, *rec.Cholesterol)
}

func TestNormalizeProduct_MilligramsRoundToNearest(t *testing.T) {
	rec, ok := normalize(t, `{"nutriments": {"energy-kcal_100g": 10, "sodium_100g": 0.0016}}`, "1")
	require.True(t, ok)

	require.NotNil(t, rec.Sodium)
	assert.Equal(t, 2.0, *rec.Sodium)
}

func TestNormalizeProduct_PerServingValues(t *testing.T) {
	rec, ok := normalize(t, `{
		"product_name": "Yogurt",
		"serving_quantity": "125 g",
		"serving_quantity_unit": "g",
		"nutriments": {
			"energy-kcal_serving": 110,
			"energy-kcal_100g": 88,
			"proteins_serving": 6.5,
			"proteins_100g": 5.2
		}
	}`, "3017620422003")
	require.True(t, ok)

	assert.Equal(t, 125.0, rec.ServingSize.Value)
	assert.Equal(t, 110.0, rec.Calories)
	require.NotNil(t, rec.Protein)
	assert.Equal(t, 6.5, *rec.Protein)
}

func TestNormalizeProduct_ServingQuantityWithoutServingEnergyFallsBack(t *testing.T) {
	rec, ok := normalize(t, `{
		"serving_quantity": 30,
		"nutriments": {"energy-kcal_100g": 400, "energy-kcal": 400}
	}`, "1")
	require.True(t, ok)

	assert.Equal(t, 100.0, rec.ServingSize.Value)
	assert.Equal(t, 400.0, rec.Calories)
}

func TestNormalizeProduct_ServingEnergyWithoutQuantityFallsBack(t *testing.T) {
	rec, ok := normalize(t, `{
		"nutriments": {"energy-kcal_serving": 120, "energy-kcal_100g": 480}
	}`, "1")
	require.True(t, ok)

	assert.Equal(t, 100.0, rec.ServingSize.Value)
	assert.Equal(t, 480.0, rec.Calories)
}

func TestNormalizeProduct_NonPositiveServingQuantityIsAbsent(t *testing.T) {
	rec, ok := normalize(t, `{
		"serving_quantity": "0",
		"nutriments": {"energy-kcal_serving": 0, "energy-kcal_100g": 20}
	}`, "1")
	require.True(t, ok)

	assert.Equal(t, 100.0, rec.ServingSize.Value)
	assert.Equal(t, 20.0, rec.Calories)
}

func TestNormalizeProduct_RejectsMissingEnergy(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "no nutriments", payload: `{"product_name": "Water"}`},
		{name: "nutriments not an object", payload: `{"nutriments": []}`},
		{name: "only unsuffixed energy", payload: `{"serving_quantity": 30, "nutriments": {"energy-kcal": 100}}`},
		{name: "serving energy is null", payload: `{"serving_quantity": 30, "nutriments": {"energy-kcal_serving": null}}`},
		{name: "energy is null", payload: `{"nutriments": {"energy-kcal_100g": null}}`},
		{name: "energy is garbage", payload: `{"nutriments": {"energy-kcal_100g": "n/a"}}`},
		{name: "only kJ", payload: `{"nutriments": {"energy-kj_100g": 1000}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := normalize(t, tt.payload, "1")
			assert.False(t, ok)
		})
	}
}

func TestNormalizeProduct_ZeroEnergyIsKept(t *testing.T) {
	rec, ok := normalize(t, `{"nutriments": {"energy-kcal_100g": 0}}`, "1")
	require.True(t, ok)
	assert.Equal(t, 0.0, rec.Calories)
}

func TestNormalizeProduct_NumericStrings(t *testing.T) {
	rec, ok := normalize(t, `{"nutriments": {"energy-kcal_100g": "52.5", "sugars_100g": " 10 "}}`, "1")
	require.True(t, ok)

	assert.Equal(t, 52.5, rec.Calories)
	require.NotNil(t, rec.Sugars)
	assert.Equal(t, 10.0, *rec.Sugars)
}

func TestNormalizeProduct_MissingMacrosStayNil(t *testing.T) {
	rec, ok := normalize(t, `{"nutriments": {"energy-kcal_100g": 1, "fat_100g": 0}}`, "1")
	require.True(t, ok)

	require.NotNil(t, rec.TotalFat)
	assert.Equal(t, 0.0, *rec.TotalFat)
	assert.Nil(t, rec.Carbohydrates)
	assert.Nil(t, rec.Fiber)
	assert.Nil(t, rec.Sugars)
	assert.Nil(t, rec.Protein)
	assert.Nil(t, rec.Sodium)
	assert.Nil(t, rec.Cholesterol)
}

func TestNormalizeProduct_Unit(t *testing.T) {
	tests := []struct {
		raw  string
		want models.ServingUnit
	}{
		{raw: `"ml"`, want: models.UnitMilliliters},
		{raw: `" ML "`, want: models.UnitMilliliters},
		{raw: `"g"`, want: models.UnitGrams},
		{raw: `"l"`, want: models.UnitGrams},
		{raw: `"mL per bottle"`, want: models.UnitGrams},
		{raw: `null`, want: models.UnitGrams},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rec, ok := normalize(t, `{"serving_quantity_unit": `+tt.raw+`, "nutriments": {"energy-kcal_100g": 1}}`, "1")
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.ServingSize.Unit)
		})
	}
}

func TestNormalizeProduct_Name(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "localized", payload: `{"product_name": "Pain", "product_name_en": "Bread"}`, want: "Pain"},
		{name: "english fallback", payload: `{"product_name": "", "product_name_en": "Bread"}`, want: "Bread"},
		{name: "placeholder", payload: `{}`, want: UnknownProductName},
		{name: "whitespace only", payload: `{"product_name": "   "}`, want: UnknownProductName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := gjson.Parse(tt.payload)
			assert.Equal(t, tt.want, productName(raw))
		})
	}
}

func TestParseServingQuantity(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{raw: `30`, want: 30, wantOK: true},
		{raw: `"30"`, want: 30, wantOK: true},
		{raw: `"30 g"`, want: 30, wantOK: true},
		{raw: `"240ml"`, want: 240, wantOK: true},
		{raw: `"12.5g"`, want: 12.5, wantOK: true},
		{raw: `".5"`, want: 0.5, wantOK: true},
		{raw: `"g30"`},
		{raw: `""`},
		{raw: `"-5"`},
		{raw: `0`},
		{raw: `null`},
		{raw: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseServingQuantity(gjson.Parse(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
