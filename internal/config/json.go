package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		LogLevel     string `json:"log_level"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		RateLimitRequests int      `json:"rate_limit_requests"`
		RateLimitWindow   Duration `json:"rate_limit_window"`
	} `json:"server,omitempty"`

	Adapter struct {
		OpenFoodFacts struct {
			BaseURL                  string   `json:"base_url"`
			UserAgent                string   `json:"user_agent"`
			RequestTimeout           Duration `json:"request_timeout"`
			BarcodeRequestsPerWindow int      `json:"barcode_requests_per_window"`
			SearchRequestsPerWindow  int      `json:"search_requests_per_window"`
			Window                   Duration `json:"window"`
			BreakerFailures          uint32   `json:"breaker_failures"`
			BreakerTimeout           Duration `json:"breaker_timeout"`
		} `json:"open_food_facts,omitempty"`
	} `json:"adapter,omitempty"`

	Services struct {
		LocalSearchLimit    int `json:"local_search_limit"`
		MaxLocalSearchLimit int `json:"max_local_search_limit"`
		ExternalSearchLimit int `json:"external_search_limit"`
	} `json:"services,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	off := jsonCfg.Adapter.OpenFoodFacts
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			LogLevel:     jsonCfg.App.LogLevel,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitRequests: jsonCfg.Server.RateLimitRequests,
			RateLimitWindow:   time.Duration(jsonCfg.Server.RateLimitWindow),
		},
		Adapter: Adapter{
			OpenFoodFacts: OpenFoodFacts{
				BaseURL:                  off.BaseURL,
				UserAgent:                off.UserAgent,
				RequestTimeout:           time.Duration(off.RequestTimeout),
				BarcodeRequestsPerWindow: off.BarcodeRequestsPerWindow,
				SearchRequestsPerWindow:  off.SearchRequestsPerWindow,
				Window:                   time.Duration(off.Window),
				BreakerFailures:          off.BreakerFailures,
				BreakerTimeout:           time.Duration(off.BreakerTimeout),
			},
		},
		Services: Services{
			LocalSearchLimit:    jsonCfg.Services.LocalSearchLimit,
			MaxLocalSearchLimit: jsonCfg.Services.MaxLocalSearchLimit,
			ExternalSearchLimit: jsonCfg.Services.ExternalSearchLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
