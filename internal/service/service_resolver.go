// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-food-keeper/internal/adapter"
	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/store"
	"github.com/MKhiriev/go-food-keeper/internal/validators"
	"github.com/MKhiriev/go-food-keeper/models"
	"golang.org/x/sync/errgroup"
)

// resolverService is the concrete implementation of ResolverService.
type resolverService struct {
	foods     store.FoodRepository
	source    adapter.FoodSource
	validator validators.Validator
	limits    searchLimits

	logger *logger.Logger
}

// NewResolverService wires the local repository and the external source.
func NewResolverService(foods store.FoodRepository, source adapter.FoodSource, cfg config.Services, logger *logger.Logger) ResolverService {
	return &resolverService{
		foods:     foods,
		source:    source,
		validator: validators.NewFoodValidator(),
		limits:    newSearchLimits(cfg),
		logger:    logger,
	}
}

func (r *resolverService) ResolveBarcode(ctx context.Context, userID, code string) (models.BarcodeResolution, error) {
	log := logger.FromContextOr(ctx, r.logger)

	code = models.NormalizeBarcode(code)
	if code == "" || !validators.IsBarcode(code) {
		return models.BarcodeResolution{}, ErrInvalidBarcode
	}

	record, err := r.foods.FindByBarcode(ctx, code, userID)
	switch {
	case err == nil:
		return models.BarcodeResolution{
			Status:  models.StatusFound,
			Barcode: code,
			Tier:    record.Tier,
			Food:    &record,
		}, nil
	case !errors.Is(err, store.ErrFoodNotFound):
		log.Err(err).Str("func", "*resolverService.ResolveBarcode").Str("barcode", code).Msg("local barcode lookup failed")
		return models.BarcodeResolution{}, mapStoreError(err)
	}

	result := r.source.LookupByBarcode(ctx, code)
	switch result.Outcome {
	case adapter.OutcomeFound:
		if result.Food == nil {
			break
		}
		food := result.Food.Food
		log.Debug().Str("func", "*resolverService.ResolveBarcode").Str("barcode", code).Msg("barcode resolved externally")
		return models.BarcodeResolution{
			Status:     models.StatusFound,
			Barcode:    code,
			Tier:       models.TierExternal,
			Food:       &food,
			ProductURL: result.Food.ProductURL,
			ImageURL:   result.Food.ImageURL,
		}, nil
	case adapter.OutcomeUnavailable:
		log.Warn().Err(result.Reason).
			Str("func", "*resolverService.ResolveBarcode").
			Str("barcode", code).
			Msg("external source unavailable, reporting barcode as not found")
	}

	return models.BarcodeResolution{Status: models.StatusNotFound, Barcode: code}, nil
}

func (r *resolverService) SearchFood(ctx context.Context, userID string, query models.SearchQuery, includeExternal bool) (models.SearchResults, error) {
	query.UserID = userID
	query.Query = strings.TrimSpace(query.Query)
	query.Limit = r.limits.local(query.Limit)
	if query.Filter == "" {
		query.Filter = models.FilterAll
	}

	var (
		local    []models.NutritionRecord
		external []models.ExternalFood
		counts   models.TierCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		local, err = r.foods.Search(gctx, query)
		if err != nil {
			return mapStoreError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = r.CountFoods(gctx, userID)
		return err
	})
	if includeExternal && !query.IsShort() {
		g.Go(func() error {
			external = r.searchExternal(gctx, query.Query, r.limits.externalCap)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "*resolverService.SearchFood").
			Str("query", query.Query).
			Str("filter", string(query.Filter)).
			Msg("food search failed")
		return models.SearchResults{}, err
	}

	if local == nil {
		local = []models.NutritionRecord{}
	}
	if external == nil {
		external = []models.ExternalFood{}
	}

	return models.SearchResults{Local: local, External: external, Counts: counts}, nil
}

func (r *resolverService) SearchExternal(ctx context.Context, query string, limit int) ([]models.ExternalFood, error) {
	query = strings.TrimSpace(query)
	if (models.SearchQuery{Query: query}).IsShort() {
		return []models.ExternalFood{}, nil
	}

	return r.searchExternal(ctx, query, r.limits.external(limit)), nil
}

// searchExternal never fails: an unavailable source is logged and reads as
// an empty result.
func (r *resolverService) searchExternal(ctx context.Context, query string, limit int) []models.ExternalFood {
	result := r.source.SearchByText(ctx, query, limit)
	switch result.Outcome {
	case adapter.OutcomeFound:
		if len(result.Foods) > limit {
			return result.Foods[:limit]
		}
		return result.Foods
	case adapter.OutcomeUnavailable:
		logger.FromContextOr(ctx, r.logger).Warn().Err(result.Reason).
			Str("func", "*resolverService.searchExternal").
			Str("query", query).
			Msg("external source unavailable, returning no external results")
	}
	return []models.ExternalFood{}
}

func (r *resolverService) ContributeFood(ctx context.Context, userID string, input models.FoodInput) (models.ContributeResult, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if input.Barcode != nil {
		code := models.NormalizeBarcode(*input.Barcode)
		input.Barcode = &code
	}
	input.Name = strings.TrimSpace(input.Name)

	if err := r.validator.Validate(ctx, input, validators.FieldBarcode); err != nil {
		log.Debug().Err(err).Str("func", "*resolverService.ContributeFood").Msg("contribution rejected")
		return models.ContributeResult{}, mapValidationError(err)
	}

	if input.Source != models.SourceOpenFoodFacts && input.Source != models.SourceScan {
		input.Source = models.SourceCommunity
	}

	record, created, err := r.foods.Contribute(ctx, userID, input)
	if err != nil {
		log.Err(err).Str("func", "*resolverService.ContributeFood").Str("barcode", *input.Barcode).Msg("contribution failed")
		return models.ContributeResult{}, mapStoreError(err)
	}

	log.Info().
		Str("func", "*resolverService.ContributeFood").
		Str("barcode", *input.Barcode).
		Bool("created", created).
		Msg("community contribution handled")

	return models.ContributeResult{Created: created, Food: record}, nil
}

func (r *resolverService) CountFoods(ctx context.Context, userID string) (models.TierCounts, error) {
	var counts models.TierCounts

	for _, c := range []struct {
		tier models.Tier
		dst  *int
	}{
		{tier: models.TierPrivate, dst: &counts.Private},
		{tier: models.TierCommunity, dst: &counts.Community},
		{tier: models.TierSystem, dst: &counts.System},
	} {
		n, err := r.foods.CountByTier(ctx, userID, c.tier)
		if err != nil {
			return models.TierCounts{}, fmt.Errorf("counting %s foods: %w", c.tier, mapStoreError(err))
		}
		*c.dst = n
	}

	return counts, nil
}
