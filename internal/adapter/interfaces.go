// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations with third-party food
// databases.
//
// The primary abstraction is [FoodSource], which decouples the resolution
// service from the remote protocol. The package ships an Open Food Facts
// implementation ([NewOpenFoodFactsClient]) that gates every call behind a
// per-class sliding-window limiter and a circuit breaker.
//
// A FoodSource never returns an error. Every call ends in one of three
// [Outcome] values so callers can log upstream trouble distinctly while still
// treating it like a miss.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-food-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/food_source_mock.go -package=mock

// Outcome classifies the result of a call to a [FoodSource].
type Outcome int

const (
	// OutcomeNotFound means the remote side answered and has no usable data.
	OutcomeNotFound Outcome = iota
	// OutcomeFound means at least one normalized record is available.
	OutcomeFound
	// OutcomeUnavailable means the call was throttled locally, short-circuited
	// by the breaker, timed out or failed in transport.
	OutcomeUnavailable
)

// String implements [fmt.Stringer] for log fields.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// LookupResult is the result of a barcode lookup. Food is set only when
// Outcome is [OutcomeFound].
type LookupResult struct {
	Outcome Outcome
	Food    *models.ExternalFood
	// Reason explains an unavailable outcome; empty otherwise.
	Reason error
}

// SearchResult is the result of a text search. Foods is empty unless
// Outcome is [OutcomeFound].
type SearchResult struct {
	Outcome Outcome
	Foods   []models.ExternalFood
	Reason  error
}

// FoodSource defines read access to a remote food database.
type FoodSource interface {
	// LookupByBarcode fetches and normalizes one product. A product without
	// an energy value counts as not found.
	LookupByBarcode(ctx context.Context, code string) LookupResult

	// SearchByText returns up to limit normalized candidates in the remote
	// relevance order. Candidates without a barcode, without nutriments or
	// failing normalization are dropped.
	SearchByText(ctx context.Context, query string, limit int) SearchResult
}
