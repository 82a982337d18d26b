// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of go-food-keeper.
//
// [ResolverService] is the food resolution engine: it cascades a barcode
// through the local tiers and the external database, runs local and external
// text searches side by side and promotes external results into the
// community tier. [FoodService] manages the private tier of one user.
//
// Services receive an already-authenticated user id and never issue tokens;
// [AuthService] only verifies bearer tokens for the HTTP layer.
package service

import (
	"context"

	"github.com/MKhiriev/go-food-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResolverService resolves foods across the private, community, system and
// external tiers.
type ResolverService interface {
	// ResolveBarcode looks the code up in the local tiers and falls back to
	// the external database. A miss or an unavailable upstream both end in
	// [models.StatusNotFound]; only local storage failures are errors.
	// External hits are never persisted.
	ResolveBarcode(ctx context.Context, userID, code string) (models.BarcodeResolution, error)

	// SearchFood runs the local search and, when includeExternal is set and
	// the query is long enough, the external search concurrently. The two
	// result sets are capped independently and returned separately.
	SearchFood(ctx context.Context, userID string, query models.SearchQuery, includeExternal bool) (models.SearchResults, error)

	// SearchExternal queries only the external database.
	SearchExternal(ctx context.Context, query string, limit int) ([]models.ExternalFood, error)

	// ContributeFood stores input in the community tier. The first
	// contribution of a barcode wins; later ones return the existing record
	// with Created set to false.
	ContributeFood(ctx context.Context, userID string, input models.FoodInput) (models.ContributeResult, error)

	// CountFoods returns live record counts for the UI badges.
	CountFoods(ctx context.Context, userID string) (models.TierCounts, error)
}

// FoodService manages the private records of a user.
type FoodService interface {
	CreateFood(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, error)
	GetFood(ctx context.Context, userID, id string) (models.NutritionRecord, error)
	ListRecentFoods(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error)
	UpdateFood(ctx context.Context, userID, id string, update models.FoodUpdate) (models.NutritionRecord, error)
	DeleteFood(ctx context.Context, userID, id string) error
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
