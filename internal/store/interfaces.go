// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the tiered food repository over PostgreSQL and
// SQLite.
//
// All tiers live in one "foods" table with an explicit tier column. Private
// rows carry an owner; community rows are unique by barcode; system rows are
// loaded offline and never written at runtime.
package store

import (
	"context"

	"github.com/MKhiriev/go-food-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FoodRepository is the local, tier-aware food store.
type FoodRepository interface {
	// FindByBarcode returns the user's private record for code, else the
	// community record. System records are not barcode-searched.
	FindByBarcode(ctx context.Context, code, userID string) (models.NutritionRecord, error)

	// Search matches names case-insensitively within the tiers selected by
	// the filter. A short query lists recent private records instead.
	Search(ctx context.Context, query models.SearchQuery) ([]models.NutritionRecord, error)

	// Contribute inserts a community record unless one with the same barcode
	// exists. userID is the contributor; community rows have no owner. The
	// bool reports whether a new row was created; otherwise the
	// existing record is returned unchanged.
	Contribute(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, bool, error)

	// CountByTier returns the live number of records the user can see in tier.
	CountByTier(ctx context.Context, userID string, tier models.Tier) (int, error)

	// Create stores a new private record owned by userID.
	Create(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, error)
	// GetByID returns a record visible to userID.
	GetByID(ctx context.Context, userID, id string) (models.NutritionRecord, error)
	// ListRecent returns the user's private records, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error)
	// Update applies a partial update to a private record of userID.
	Update(ctx context.Context, userID, id string, update models.FoodUpdate) (models.NutritionRecord, error)
	// Delete removes a private record of userID.
	Delete(ctx context.Context, userID, id string) error
}

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}
