// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Tier is the ownership and visibility class of a nutrition record.
// It is stored explicitly on every persisted record and computed once at
// write time.
type Tier string

const (
	// TierPrivate records belong to exactly one user and are mutable only by them.
	TierPrivate Tier = "private"
	// TierCommunity records form a shared pool keyed uniquely by barcode.
	// They are created only through contribution and never updated by users.
	TierCommunity Tier = "community"
	// TierSystem records are the curated reference set (e.g. USDA foundation
	// foods). They are read-only at runtime.
	TierSystem Tier = "system"
	// TierExternal marks a record fetched live from the third-party database
	// that has not been persisted anywhere.
	TierExternal Tier = "external"
)

// ServingUnit is the unit of a serving size.
type ServingUnit string

const (
	UnitGrams       ServingUnit = "g"
	UnitMilliliters ServingUnit = "ml"
)

// Provenance tells how the data of a record was obtained.
type Provenance string

const (
	SourceManual        Provenance = "manual"
	SourceScan          Provenance = "scan"
	SourceAPI           Provenance = "api"
	SourceCommunity     Provenance = "community"
	SourceOpenFoodFacts Provenance = "openfoodfacts"
)

// ServingSize is the numeric value and unit of one serving.
type ServingSize struct {
	Value float64     `json:"value"`
	Unit  ServingUnit `json:"unit"`
}

// NutritionRecord is the canonical nutrition fact sheet.
//
// Energy is in kcal, macros in grams, sodium and cholesterol in milligrams.
// Optional nutrients are nil when unknown, which is different from zero.
type NutritionRecord struct {
	ID      string  `json:"id,omitempty"`
	Tier    Tier    `json:"tier"`
	OwnerID *string `json:"-"`

	Name        string      `json:"name"`
	ServingSize ServingSize `json:"serving_size"`
	Calories    float64     `json:"calories"`

	TotalFat      *float64 `json:"total_fat"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fiber         *float64 `json:"fiber"`
	Sugars        *float64 `json:"sugars"`
	Protein       *float64 `json:"protein"`
	Cholesterol   *float64 `json:"cholesterol"`
	Sodium        *float64 `json:"sodium"`

	Barcode *string    `json:"barcode"`
	Source  Provenance `json:"source"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// ExternalFood is a transient record fetched from Open Food Facts together
// with the metadata a caller needs to offer "save this" as a follow-up.
type ExternalFood struct {
	Food        NutritionRecord `json:"food"`
	ProductName string          `json:"product_name"`
	ProductURL  string          `json:"product_url"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// FoodInput carries the fields of a record to be created or contributed.
//
// Calories is a pointer so that a missing value can be told apart from zero.
type FoodInput struct {
	Name             string      `json:"name" validate:"required,notblank,max=255"`
	ServingSizeValue float64     `json:"serving_size_value" validate:"gt=0"`
	ServingSizeUnit  ServingUnit `json:"serving_size_unit" validate:"oneof=g ml"`
	Calories         *float64    `json:"calories" validate:"required,gte=0"`

	TotalFat      *float64 `json:"total_fat,omitempty" validate:"omitempty,gte=0"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty" validate:"omitempty,gte=0"`
	Fiber         *float64 `json:"fiber,omitempty" validate:"omitempty,gte=0"`
	Sugars        *float64 `json:"sugars,omitempty" validate:"omitempty,gte=0"`
	Protein       *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Cholesterol   *float64 `json:"cholesterol,omitempty" validate:"omitempty,gte=0"`
	Sodium        *float64 `json:"sodium,omitempty" validate:"omitempty,gte=0"`

	Barcode *string    `json:"barcode,omitempty" validate:"omitempty,barcode"`
	Source  Provenance `json:"source,omitempty" validate:"omitempty,oneof=manual scan api community openfoodfacts"`
}

// FoodInputFromRecord builds an input from an existing record, typically an
// external result the user decided to save.
func FoodInputFromRecord(r NutritionRecord) FoodInput {
	calories := r.Calories
	return FoodInput{
		Name:             r.Name,
		ServingSizeValue: r.ServingSize.Value,
		ServingSizeUnit:  r.ServingSize.Unit,
		Calories:         &calories,
		TotalFat:         r.TotalFat,
		Carbohydrates:    r.Carbohydrates,
		Fiber:            r.Fiber,
		Sugars:           r.Sugars,
		Protein:          r.Protein,
		Cholesterol:      r.Cholesterol,
		Sodium:           r.Sodium,
		Barcode:          r.Barcode,
		Source:           r.Source,
	}
}

// FoodUpdate is a partial update of a private record. Nil fields are left
// unchanged.
type FoodUpdate struct {
	Name             *string      `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	ServingSizeValue *float64     `json:"serving_size_value,omitempty" validate:"omitempty,gt=0"`
	ServingSizeUnit  *ServingUnit `json:"serving_size_unit,omitempty" validate:"omitempty,oneof=g ml"`
	Calories         *float64     `json:"calories,omitempty" validate:"omitempty,gte=0"`

	TotalFat      *float64 `json:"total_fat,omitempty" validate:"omitempty,gte=0"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty" validate:"omitempty,gte=0"`
	Fiber         *float64 `json:"fiber,omitempty" validate:"omitempty,gte=0"`
	Sugars        *float64 `json:"sugars,omitempty" validate:"omitempty,gte=0"`
	Protein       *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Cholesterol   *float64 `json:"cholesterol,omitempty" validate:"omitempty,gte=0"`
	Sodium        *float64 `json:"sodium,omitempty" validate:"omitempty,gte=0"`

	Barcode *string `json:"barcode,omitempty" validate:"omitempty,barcode"`
}

// HasChanges reports whether at least one field is set.
func (u FoodUpdate) HasChanges() bool {
	return u.Name != nil || u.ServingSizeValue != nil || u.ServingSizeUnit != nil ||
		u.Calories != nil || u.TotalFat != nil || u.Carbohydrates != nil ||
		u.Fiber != nil || u.Sugars != nil || u.Protein != nil ||
		u.Cholesterol != nil || u.Sodium != nil || u.Barcode != nil
}

// NormalizeBarcode trims surrounding whitespace from a scanned code.
func NormalizeBarcode(code string) string {
	return strings.TrimSpace(code)
}
