package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requirements lists the fields that must be set per environment. Sqlite
// deployments skip the DB_* fields.
var requirements = map[Environment][]string{
	Development: {},
	Test:        {},
	CI:          {"JWT_SECRET"},
	Production:  {"JWT_SECRET", "DB_PASSWORD"},
}

// ValidateConfig checks the configuration against the requirements for the
// current environment and reports every failure at once.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []ValidationError

	for _, field := range requirements[env] {
		if field == "DB_PASSWORD" && (cfg.UsesSQLite() || cfg.DatabaseURL != "") {
			continue
		}
		if fieldValue(cfg, field) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required in " + string(env)})
		}
	}

	if cfg.DatabaseURL == "" && (cfg.DBHost == "" || cfg.DBName == "") {
		errs = append(errs, ValidationError{Field: "DATABASE_URL", Message: "set DATABASE_URL or DB_HOST and DB_NAME"})
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must not be empty"})
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		errs = append(errs, ValidationError{Field: "LOG_FORMAT", Message: fmt.Sprintf("unsupported format %q", cfg.LogFormat)})
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		errs = append(errs, ValidationError{Field: "AWS_REGION", Message: "is required when S3_BUCKET_NAME is set"})
	}

	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return errors.New(strings.Join(lines, "\n"))
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "JWT_SECRET":
		return cfg.JWTSecret
	case "DB_PASSWORD":
		return cfg.DBPassword
	}
	return ""
}
