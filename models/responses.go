package models

// ErrorResponse is the JSON body of a failed API request.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`

	// Fields maps JSON field names of the request body to validation
	// messages. Present only for validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

// FoodList wraps a list of records together with its length.
type FoodList struct {
	Foods  []NutritionRecord `json:"foods"`
	Length int               `json:"length"`
}

// ExternalFoodList wraps external search results.
type ExternalFoodList struct {
	Foods  []ExternalFood `json:"foods"`
	Length int            `json:"length"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
