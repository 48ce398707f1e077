package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if required values are missing or validation fails.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		// Skip unexported fields
		if !fieldVal.CanSet() {
			continue
		}

		// Recurse into nested structs
		if field.Type.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		// Get tags
		envName := field.Tag.Get("env")
		envAlt := field.Tag.Get("envAlt")
		defaultVal := field.Tag.Get("default")
		required := field.Tag.Get("required") == "true"

		if envName == "" {
			continue
		}

		// Try primary env var, then alternate
		value := os.Getenv(envName)
		if value == "" && envAlt != "" {
			value = os.Getenv(envAlt)
		}

		// Apply default if not set
		if value == "" {
			if required {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = defaultVal
		}

		if value == "" {
			continue
		}

		// Set the field value
		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		// Handle time.Duration specially
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			// Split comma-separated values, trim whitespace
			parts := strings.Split(value, ",")
			result := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					result = append(result, p)
				}
			}
			field.Set(reflect.ValueOf(result))
		} else {
			return fmt.Errorf("unsupported slice type: %s", field.Type().Elem().Kind())
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	// Sheet validation
	switch strings.ToLower(c.Sheet.Backend) {
	case "gsheet":
		if c.Sheet.SpreadsheetID == "" {
			errs = append(errs, "SPREADSHEET_ID is required for the gsheet backend")
		}
		if c.Sheet.CredentialsFile == "" {
			errs = append(errs, "SHEET_CREDENTIALS_FILE is required for the gsheet backend")
		}
	case "xlsx", "csv":
		if c.Sheet.Path == "" {
			errs = append(errs, "SHEET_PATH is required for the xlsx and csv backends")
		}
	default:
		errs = append(errs, fmt.Sprintf("SHEET_BACKEND (%q) must be one of: gsheet, xlsx, csv", c.Sheet.Backend))
	}

	// Store validation
	switch strings.ToLower(c.Store.Backend) {
	case "s3":
		if c.Store.Bucket == "" {
			errs = append(errs, "STORE_BUCKET is required for the s3 backend")
		}
		if c.Store.Region == "" {
			errs = append(errs, "STORE_REGION is required for the s3 backend")
		}
	case "http":
		// Direct URL dereferencing needs no settings beyond the timeout.
	default:
		errs = append(errs, fmt.Sprintf("STORE_BACKEND (%q) must be one of: s3, http", c.Store.Backend))
	}
	if c.Store.FetchTimeout <= 0 {
		errs = append(errs, "STORE_FETCH_TIMEOUT must be positive")
	}

	// Lookup validation
	if c.Lookup.Profile == "" {
		errs = append(errs, "LOOKUP_PROFILE must not be empty")
	}
	if c.Lookup.FuzzyThreshold < 0 || c.Lookup.FuzzyThreshold > 100 {
		errs = append(errs, fmt.Sprintf("LOOKUP_FUZZY_THRESHOLD (%d) must be 0-100", c.Lookup.FuzzyThreshold))
	}
	if c.Lookup.SuggestMinLength <= 0 {
		errs = append(errs, "LOOKUP_SUGGEST_MIN_LENGTH must be positive")
	}

	// Security validation
	if c.Security.RequirePasscode && c.Security.Passcode == "" && len(c.Security.RolePasscodes) == 0 {
		errs = append(errs, "REQUIRE_PASSCODE is true but no ACCESS_PASSCODE or ROLE_PASSCODES configured")
	}
	for _, pair := range c.Security.RolePasscodes {
		if !strings.Contains(pair, ":") {
			errs = append(errs, fmt.Sprintf("ROLE_PASSCODES entry (%q) must be role:secret", pair))
		}
	}

	// Rate limit validation
	if c.Rate.Enabled && c.Rate.RequestsPerMinute <= 0 {
		errs = append(errs, "RATE_LIMIT_REQUESTS_PER_MINUTE must be positive when rate limiting is enabled")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RolePasscodeMap parses the role:secret pairs into a map. Malformed pairs
// were already rejected by Validate.
func (c *SecurityConfig) RolePasscodeMap() map[string]string {
	m := make(map[string]string, len(c.RolePasscodes))
	for _, pair := range c.RolePasscodes {
		role, secret, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		m[strings.TrimSpace(role)] = secret
	}
	return m
}

// String returns a safe string representation of the config for logging.
// Secrets are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port))
	b.WriteString(fmt.Sprintf("Sheet: {Backend: %q, SpreadsheetID: %q, Path: %q}, ",
		c.Sheet.Backend, c.Sheet.SpreadsheetID, c.Sheet.Path))
	b.WriteString(fmt.Sprintf("Store: {Backend: %q, Bucket: %q}, ", c.Store.Backend, c.Store.Bucket))
	b.WriteString(fmt.Sprintf("Lookup: {Profile: %q, FuzzyThreshold: %d}, ",
		c.Lookup.Profile, c.Lookup.FuzzyThreshold))
	b.WriteString(fmt.Sprintf("Security: {Passcode: [MASKED], RolePasscodes: %d entries, RequirePasscode: %v}, ",
		len(c.Security.RolePasscodes), c.Security.RequirePasscode))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
