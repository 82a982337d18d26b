// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/tidwall/gjson"
)

// UnknownProductName replaces a missing product name.
const UnknownProductName = "Unknown Product"

const (
	suffixServing = "_serving"
	suffix100g    = "_100g"

	// Open Food Facts reports sodium and cholesterol in grams.
	gramsToMilligrams = 1000
)

// NormalizeProduct converts a raw Open Food Facts product object into a
// canonical record. It returns false when the product has no nutriments or
// no energy value under the chosen basis; such a product must not be shown.
//
// Per-serving values are used only when the product has both a parseable
// positive serving_quantity and an energy-kcal_serving value. Otherwise the
// per-100g/ml values are used with a serving size of exactly 100.
func NormalizeProduct(raw gjson.Result, barcode string) (models.NutritionRecord, bool) {
	nutriments := raw.Get("nutriments")
	if !nutriments.IsObject() {
		return models.NutritionRecord{}, false
	}

	unit := models.UnitGrams
	if strings.EqualFold(strings.TrimSpace(raw.Get("serving_quantity_unit").String()), string(models.UnitMilliliters)) {
		unit = models.UnitMilliliters
	}

	servingValue := 100.0
	suffix := suffix100g
	if qty, ok := parseServingQuantity(raw.Get("serving_quantity")); ok {
		if _, hasServingEnergy := nutrient(nutriments, "energy-kcal", suffixServing); hasServingEnergy {
			servingValue = qty
			suffix = suffixServing
		}
	}

	calories, ok := nutrient(nutriments, "energy-kcal", suffix)
	if !ok {
		return models.NutritionRecord{}, false
	}

	code := barcode
	record := models.NutritionRecord{
		Tier: models.TierExternal,
		Name: productName(raw),
		ServingSize: models.ServingSize{
			Value: servingValue,
			Unit:  unit,
		},
		Calories:      calories,
		TotalFat:      optionalNutrient(nutriments, "fat", suffix),
		Carbohydrates: optionalNutrient(nutriments, "carbohydrates", suffix),
		Fiber:         optionalNutrient(nutriments, "fiber", suffix),
		Sugars:        optionalNutrient(nutriments, "sugars", suffix),
		Protein:       optionalNutrient(nutriments, "proteins", suffix),
		Cholesterol:   milligrams(nutriments, "cholesterol", suffix),
		Sodium:        milligrams(nutriments, "sodium", suffix),
		Barcode:       &code,
		Source:        models.SourceOpenFoodFacts,
	}

	return record, true
}

func productName(raw gjson.Result) string {
	for _, key := range []string{"product_name", "product_name_en"} {
		if name := strings.TrimSpace(raw.Get(key).String()); name != "" {
			return name
		}
	}
	return UnknownProductName
}

// nutrient reads nutriments[key+suffix] as a number. Numeric strings are
// accepted; null, missing and unparseable values are absent.
func nutrient(nutriments gjson.Result, key, suffix string) (float64, bool) {
	v := nutriments.Get(key + suffix)
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func optionalNutrient(nutriments gjson.Result, key, suffix string) *float64 {
	v, ok := nutrient(nutriments, key, suffix)
	if !ok {
		return nil
	}
	return &v
}

func milligrams(nutriments gjson.Result, key, suffix string) *float64 {
	v, ok := nutrient(nutriments, key, suffix)
	if !ok {
		return nil
	}
	mg := math.Round(v * gramsToMilligrams)
	return &mg
}

// parseServingQuantity accepts a bare number or a string whose leading part
// is a decimal number ("30", "30 g", "240ml"). Non-positive values are
// rejected because a serving must be larger than zero.
func parseServingQuantity(v gjson.Result) (float64, bool) {
	var qty float64
	switch v.Type {
	case gjson.Number:
		qty = v.Num
	case gjson.String:
		prefix := leadingDecimal(strings.TrimSpace(v.Str))
		if prefix == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, false
		}
		qty = f
	default:
		return 0, false
	}

	if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return 0, false
	}
	return qty, true
}

// leadingDecimal returns the longest prefix of s shaped like [+-]digits[.digits].
func leadingDecimal(s string) string {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && s[frac] >= '0' && s[frac] <= '9' {
			frac++
		}
		if frac > end+1 {
			digits += frac - end - 1
			end = frac
		}
	}

	if digits == 0 {
		return ""
	}
	return s[:end]
}
