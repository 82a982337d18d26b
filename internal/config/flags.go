package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a listen address given as host:port. It implements
// flag.Value. An empty host listens on all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:port
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key token verification key
//	-token-issuer expected token issuer
//	-log-level zerolog level name
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-rate-limit inbound requests per IP per window on external routes
//	-rate-window inbound rate limit window
//	-off-url Open Food Facts base URL
//	-off-timeout Open Food Facts request timeout
//	-off-barcode-limit outbound barcode lookups per window
//	-off-search-limit outbound text searches per window
//	-off-window outbound rate limit window
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		jsonConfigPath string
		cfg            StructuredConfig
	)
	off := &cfg.Adapter.OpenFoodFacts

	fs := flag.NewFlagSet("food-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Server.RateLimitRequests, "rate-limit", 0, "Requests per IP per window on routes reaching Open Food Facts")
	fs.DurationVar(&cfg.Server.RateLimitWindow, "rate-window", 0, "Inbound rate limit window")
	fs.StringVar(&off.BaseURL, "off-url", "", "Open Food Facts base URL")
	fs.DurationVar(&off.RequestTimeout, "off-timeout", 0, "Open Food Facts request timeout")
	fs.IntVar(&off.BarcodeRequestsPerWindow, "off-barcode-limit", 0, "Open Food Facts barcode lookups per window")
	fs.IntVar(&off.SearchRequestsPerWindow, "off-search-limit", 0, "Open Food Facts text searches per window")
	fs.DurationVar(&off.Window, "off-window", 0, "Open Food Facts rate limit window")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.JSONFilePath = jsonConfigPath

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses [host]:port. The host must be empty, "localhost" or an IP
// literal; IPv6 literals are written in brackets.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
