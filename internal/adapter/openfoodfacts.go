// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/utils"
	"github.com/MKhiriev/go-food-keeper/models"
	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

const (
	productPath = "/api/v2/product/{code}.json"
	searchPath  = "/api/v2/search"

	searchFields = "code,product_name,product_name_en,nutriments,serving_quantity,serving_quantity_unit,image_url"

	defaultSearchPageSize = 20
	maxSearchPageSize     = 100

	breakerName = "openfoodfacts"

	defaultRequestTimeout  = 10 * time.Second
	defaultBreakerFailures = 5
)

// Limiter is a non-blocking request gate.
type Limiter interface {
	TryAcquire() bool
}

// OpenFoodFactsClient implements [FoodSource] against the Open Food Facts
// JSON API. Barcode lookups and text searches are gated by separate limiters
// owned by the caller.
type OpenFoodFactsClient struct {
	client  *utils.HTTPClient
	baseURL string

	barcodeLimiter Limiter
	searchLimiter  Limiter
	breaker        *gobreaker.CircuitBreaker[*resty.Response]

	logger *logger.Logger
}

var _ FoodSource = (*OpenFoodFactsClient)(nil)

// NewOpenFoodFactsClient builds a client from cfg. The HTTP client has a
// finite timeout (10s when cfg.RequestTimeout is not positive) and no
// retries. The circuit breaker opens after cfg.BreakerFailures consecutive
// transport or 5xx failures and stays open for cfg.BreakerTimeout.
func NewOpenFoodFactsClient(cfg config.OpenFoodFacts, barcodeLimiter, searchLimiter Limiter, log *logger.Logger) *OpenFoodFactsClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	componentLog := log.WithComponent(breakerName)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}

	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLog.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		// a caller that gave up is not an upstream failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	componentLog.Debug().Str("base_url", baseURL).Msg("creating open food facts client")

	return &OpenFoodFactsClient{
		client:         utils.NewHTTPClient(baseURL, timeout, cfg.UserAgent),
		baseURL:        baseURL,
		barcodeLimiter: barcodeLimiter,
		searchLimiter:  searchLimiter,
		breaker:        breaker,
		logger:         componentLog,
	}
}

// LookupByBarcode implements [FoodSource].
func (c *OpenFoodFactsClient) LookupByBarcode(ctx context.Context, code string) LookupResult {
	log := c.requestLogger(ctx)

	code = models.NormalizeBarcode(code)
	if code == "" {
		return LookupResult{Outcome: OutcomeNotFound}
	}

	if !c.barcodeLimiter.TryAcquire() {
		log.Warn().Str("func", "*OpenFoodFactsClient.LookupByBarcode").Str("barcode", code).Msg("barcode lookup rate limit exceeded")
		return LookupResult{Outcome: OutcomeUnavailable, Reason: ErrRateLimited}
	}

	resp, err := c.execute(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("code", code).Get(productPath)
	})
	if err != nil {
		log.Err(err).Str("func", "*OpenFoodFactsClient.LookupByBarcode").Str("barcode", code).Stringer("breaker", c.breaker.State()).Msg("open food facts lookup failed")
		return LookupResult{Outcome: OutcomeUnavailable, Reason: err}
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return LookupResult{Outcome: OutcomeNotFound}
		}
		log.Warn().Err(err).Str("func", "*OpenFoodFactsClient.LookupByBarcode").Str("barcode", code).Msg("unexpected open food facts answer")
		return LookupResult{Outcome: OutcomeUnavailable, Reason: err}
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		log.Warn().Str("func", "*OpenFoodFactsClient.LookupByBarcode").Str("barcode", code).Msg("malformed open food facts payload")
		return LookupResult{Outcome: OutcomeUnavailable, Reason: ErrMalformedPayload}
	}

	data := gjson.ParseBytes(body)
	product := data.Get("product")
	if data.Get("status").Int() != 1 || !product.IsObject() {
		return LookupResult{Outcome: OutcomeNotFound}
	}

	food, ok := c.toExternalFood(product, code)
	if !ok {
		log.Debug().Str("func", "*OpenFoodFactsClient.LookupByBarcode").Str("barcode", code).Msg("product has no energy value, skipping")
		return LookupResult{Outcome: OutcomeNotFound}
	}

	return LookupResult{Outcome: OutcomeFound, Food: &food}
}

// SearchByText implements [FoodSource]. limit is clamped to 1..100 and
// defaults to 20.
func (c *OpenFoodFactsClient) SearchByText(ctx context.Context, query string, limit int) SearchResult {
	log := c.requestLogger(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{Outcome: OutcomeNotFound}
	}
	limit = clampPageSize(limit)

	if !c.searchLimiter.TryAcquire() {
		log.Warn().Str("func", "*OpenFoodFactsClient.SearchByText").Str("query", query).Msg("search rate limit exceeded")
		return SearchResult{Outcome: OutcomeUnavailable, Reason: ErrRateLimited}
	}

	resp, err := c.execute(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(map[string]string{
			"search_terms": query,
			"page_size":    strconv.Itoa(limit),
			"fields":       searchFields,
		}).Get(searchPath)
	})
	if err != nil {
		log.Err(err).Str("func", "*OpenFoodFactsClient.SearchByText").Str("query", query).Stringer("breaker", c.breaker.State()).Msg("open food facts search failed")
		return SearchResult{Outcome: OutcomeUnavailable, Reason: err}
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return SearchResult{Outcome: OutcomeNotFound}
		}
		log.Warn().Err(err).Str("func", "*OpenFoodFactsClient.SearchByText").Str("query", query).Msg("unexpected open food facts answer")
		return SearchResult{Outcome: OutcomeUnavailable, Reason: err}
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		log.Warn().Str("func", "*OpenFoodFactsClient.SearchByText").Str("query", query).Msg("malformed open food facts payload")
		return SearchResult{Outcome: OutcomeUnavailable, Reason: ErrMalformedPayload}
	}

	foods := make([]models.ExternalFood, 0, limit)
	gjson.GetBytes(body, "products").ForEach(func(_, product gjson.Result) bool {
		code := models.NormalizeBarcode(product.Get("code").String())
		if code == "" {
			return true
		}
		if food, ok := c.toExternalFood(product, code); ok {
			foods = append(foods, food)
		}
		return len(foods) < limit
	})

	if len(foods) == 0 {
		return SearchResult{Outcome: OutcomeNotFound}
	}

	return SearchResult{Outcome: OutcomeFound, Foods: foods}
}

// execute runs one request through the circuit breaker. Transport errors and
// 5xx answers count as breaker failures; other statuses are returned as a
// response for the caller to map.
func (c *OpenFoodFactsClient) execute(ctx context.Context, do func(r *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		resp, err := do(c.client.R().SetContext(ctx))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ctxErr)
			}
			return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		if mapErr := mapHTTPError(resp); errors.Is(mapErr, ErrUpstreamUnavailable) {
			return nil, mapErr
		}
		return resp, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}

	return resp, err
}

func (c *OpenFoodFactsClient) toExternalFood(product gjson.Result, code string) (models.ExternalFood, bool) {
	record, ok := NormalizeProduct(product, code)
	if !ok {
		return models.ExternalFood{}, false
	}

	return models.ExternalFood{
		Food:        record,
		ProductName: record.Name,
		ProductURL:  c.ProductURL(code),
		ImageURL:    strings.TrimSpace(product.Get("image_url").String()),
	}, true
}

// ProductURL returns the public page of a product.
func (c *OpenFoodFactsClient) ProductURL(code string) string {
	return c.baseURL + "/product/" + url.PathEscape(code)
}

// requestLogger prefers the request-scoped logger carrying the trace id.
func (c *OpenFoodFactsClient) requestLogger(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, c.logger)
}

func clampPageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultSearchPageSize
	case limit > maxSearchPageSize:
		return maxSearchPageSize
	default:
		return limit
	}
}
