package config

import "time"

const (
	defaultLogLevel = "info"

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute

	defaultDBDriver = DriverSQLite
	defaultDBDSN    = "food-keeper.db"

	defaultOFFBaseURL          = "https://world.openfoodfacts.org"
	defaultOFFUserAgent        = "GoFoodKeeper/1.0 (https://github.com/MKhiriev/go-food-keeper)"
	defaultOFFRequestTimeout   = 10 * time.Second
	defaultOFFBarcodeRequests  = 10
	defaultOFFSearchRequests   = 30
	defaultOFFWindow           = 60 * time.Second
	defaultOFFBreakerFailures  = 5
	defaultOFFBreakerTimeout   = 30 * time.Second
	defaultLocalSearchLimit    = 30
	defaultMaxLocalSearchLimit = 50
	defaultExternalSearchLimit = 20
)

// defaultConfig returns the lowest-priority source. Only fields that have a
// sensible default are set; secrets are left empty.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
				DSN:    defaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:       defaultHTTPAddress,
			RequestTimeout:    defaultRequestTimeout,
			RateLimitRequests: defaultRateLimitRequests,
			RateLimitWindow:   defaultRateLimitWindow,
		},
		Adapter: Adapter{
			OpenFoodFacts: OpenFoodFacts{
				BaseURL:                  defaultOFFBaseURL,
				UserAgent:                defaultOFFUserAgent,
				RequestTimeout:           defaultOFFRequestTimeout,
				BarcodeRequestsPerWindow: defaultOFFBarcodeRequests,
				SearchRequestsPerWindow:  defaultOFFSearchRequests,
				Window:                   defaultOFFWindow,
				BreakerFailures:          defaultOFFBreakerFailures,
				BreakerTimeout:           defaultOFFBreakerTimeout,
			},
		},
		Services: Services{
			LocalSearchLimit:    defaultLocalSearchLimit,
			MaxLocalSearchLimit: defaultMaxLocalSearchLimit,
			ExternalSearchLimit: defaultExternalSearchLimit,
		},
	}
}
