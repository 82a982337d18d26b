// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/store"
	"github.com/MKhiriev/go-food-keeper/models"
)

// foodService is the concrete implementation of FoodService. Input
// validation is done by the FoodValidationService wrapper; this type only
// normalizes and delegates to the repository.
type foodService struct {
	foods  store.FoodRepository
	limits searchLimits

	logger *logger.Logger
}

// NewFoodService constructs a FoodService over the given repository.
func NewFoodService(foods store.FoodRepository, cfg config.Services, logger *logger.Logger) FoodService {
	return &foodService{
		foods:  foods,
		limits: newSearchLimits(cfg),
		logger: logger,
	}
}

// CreateFood stores a new private record owned by userID. The source
// defaults to manual.
func (f *foodService) CreateFood(ctx context.Context, userID string, input models.FoodInput) (models.NutritionRecord, error) {
	log := logger.FromContextOr(ctx, f.logger)

	input.Name = strings.TrimSpace(input.Name)
	if input.Barcode != nil {
		code := models.NormalizeBarcode(*input.Barcode)
		if code == "" {
			input.Barcode = nil
		} else {
			input.Barcode = &code
		}
	}
	if input.Source == "" {
		input.Source = models.SourceManual
	}

	record, err := f.foods.Create(ctx, userID, input)
	if err != nil {
		log.Err(err).Str("func", "*foodService.CreateFood").Str("name", input.Name).Msg("creating private food failed")
		return models.NutritionRecord{}, mapStoreError(err)
	}

	return record, nil
}

// GetFood returns a record visible to userID: any of their private records or
// any shared record.
func (f *foodService) GetFood(ctx context.Context, userID, id string) (models.NutritionRecord, error) {
	record, err := f.foods.GetByID(ctx, userID, id)
	if err != nil {
		return models.NutritionRecord{}, mapStoreError(err)
	}
	return record, nil
}

func (f *foodService) ListRecentFoods(ctx context.Context, userID string, limit int) ([]models.NutritionRecord, error) {
	records, err := f.foods.ListRecent(ctx, userID, f.limits.local(limit))
	if err != nil {
		logger.FromContextOr(ctx, f.logger).Err(err).Str("func", "*foodService.ListRecentFoods").Msg("listing recent foods failed")
		return nil, mapStoreError(err)
	}
	if records == nil {
		records = []models.NutritionRecord{}
	}
	return records, nil
}

// UpdateFood applies a partial update. Community and system records are
// read-only and produce ErrForbidden.
func (f *foodService) UpdateFood(ctx context.Context, userID, id string, update models.FoodUpdate) (models.NutritionRecord, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Barcode != nil {
		code := models.NormalizeBarcode(*update.Barcode)
		update.Barcode = &code
	}

	record, err := f.foods.Update(ctx, userID, id, update)
	if err != nil {
		logger.FromContextOr(ctx, f.logger).Err(err).Str("func", "*foodService.UpdateFood").Str("id", id).Msg("updating food failed")
		return models.NutritionRecord{}, mapStoreError(err)
	}
	return record, nil
}

func (f *foodService) DeleteFood(ctx context.Context, userID, id string) error {
	if err := f.foods.Delete(ctx, userID, id); err != nil {
		logger.FromContextOr(ctx, f.logger).Err(err).Str("func", "*foodService.DeleteFood").Str("id", id).Msg("deleting food failed")
		return mapStoreError(err)
	}
	return nil
}
