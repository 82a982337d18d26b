package models

import "strings"

// MinQueryLength is the shortest trimmed query that triggers a text match.
// Shorter queries fall back to recent private records or to nothing.
const MinQueryLength = 2

// SearchFilter restricts a local search to one or more tiers.
type SearchFilter string

const (
	// FilterAll returns private matches first, then system matches.
	FilterAll       SearchFilter = "all"
	FilterPrivate   SearchFilter = "private"
	FilterSystem    SearchFilter = "system"
	FilterCommunity SearchFilter = "community"
)

// ParseSearchFilter maps a query-string value to a [SearchFilter].
// An empty value means [FilterAll]; "user" is accepted as an alias of
// [FilterPrivate].
func ParseSearchFilter(s string) (SearchFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FilterAll):
		return FilterAll, true
	case string(FilterPrivate), "user":
		return FilterPrivate, true
	case string(FilterSystem):
		return FilterSystem, true
	case string(FilterCommunity):
		return FilterCommunity, true
	default:
		return "", false
	}
}

// SearchQuery describes a local text search.
type SearchQuery struct {
	UserID string
	Query  string
	Filter SearchFilter
	Limit  int
}

// IsShort reports whether the trimmed query is below [MinQueryLength] runes.
func (q SearchQuery) IsShort() bool {
	return len([]rune(strings.TrimSpace(q.Query))) < MinQueryLength
}

// SearchResults keeps local and external results apart because their
// relevance orderings are not comparable.
type SearchResults struct {
	Local    []NutritionRecord `json:"local"`
	External []ExternalFood    `json:"external"`
	Counts   TierCounts        `json:"counts"`
}

// TierCounts holds live record counts used for UI badges.
type TierCounts struct {
	Private   int `json:"private"`
	Community int `json:"community"`
	System    int `json:"system"`
}
