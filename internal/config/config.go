// Package config provides centralized configuration management for the
// lookup service. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Sheet    SheetConfig
	Store    StoreConfig
	Lookup   LookupConfig
	Security SecurityConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s).
	// Sheet reads and attachment fetches have no timeout of their own; a
	// hang is cut here and surfaces as a transient failure.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SheetConfig selects and configures the tabular data source.
type SheetConfig struct {
	// Backend is the source kind: gsheet, xlsx, or csv (default: gsheet)
	Backend string `env:"SHEET_BACKEND" default:"gsheet"`

	// SpreadsheetID is the Google Sheets document ID (required for gsheet)
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	// ReadRange is the A1 range to read (default: Sheet1)
	ReadRange string `env:"SHEET_READ_RANGE" default:"Sheet1"`

	// CredentialsFile is the service account key path (default: /etc/secrets/credentials.json)
	CredentialsFile string `env:"SHEET_CREDENTIALS_FILE" default:"/etc/secrets/credentials.json"`

	// Path is the workbook or CSV file path (required for xlsx/csv backends)
	Path string `env:"SHEET_PATH"`
}

// StoreConfig selects and configures the attachment document store.
type StoreConfig struct {
	// Backend is the store kind: s3 or http (default: http)
	Backend string `env:"STORE_BACKEND" default:"http"`

	// Bucket is the S3 bucket holding attachments (required for s3)
	Bucket string `env:"STORE_BUCKET"`

	// Region is the S3 bucket region (required for s3)
	Region string `env:"STORE_REGION" envAlt:"AWS_REGION"`

	// Prefix is an optional key prefix prepended to folder scopes
	Prefix string `env:"STORE_PREFIX"`

	// FetchTimeout bounds a single attachment dereference (default: 20s)
	FetchTimeout time.Duration `env:"STORE_FETCH_TIMEOUT" default:"20s"`
}

// LookupConfig holds record resolution settings.
type LookupConfig struct {
	// Profile names the deployment profile to resolve against (default: tally)
	Profile string `env:"LOOKUP_PROFILE" default:"tally"`

	// FuzzyThreshold is the middle-name similarity acceptance threshold,
	// exclusive, on a 0-100 scale (default: 80)
	FuzzyThreshold int `env:"LOOKUP_FUZZY_THRESHOLD" default:"80"`

	// SuggestMinLength is the minimum typeahead query length (default: 2)
	SuggestMinLength int `env:"LOOKUP_SUGGEST_MIN_LENGTH" default:"2"`
}

// SecurityConfig holds the access gate and proxy trust settings.
type SecurityConfig struct {
	// Passcode is the global access passcode (required unless gate disabled)
	Passcode string `env:"ACCESS_PASSCODE"`

	// RolePasscodes are per-role secrets as "role:secret" pairs,
	// comma-separated, e.g. "lodging-desk:s1,transit-desk:s2"
	RolePasscodes []string `env:"ROLE_PASSCODES"`

	// RequirePasscode gates /api behind the passcode header (default: true)
	RequirePasscode bool `env:"REQUIRE_PASSCODE" default:"true"`

	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
