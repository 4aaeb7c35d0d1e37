package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// DatabaseURL takes precedence over the discrete DB* fields. A sqlite://
	// URL selects the embedded driver.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	FrontendOrigins []string

	// Recipe media storage
	S3Bucket    string
	AWSRegion   string
	MediaPrefix string

	LogLevel  string
	LogFormat string

	MigrationsDir string
}

// secretKeys maps Docker secret file names to their viper keys.
var secretKeys = map[string]string{
	"db_password":    "db_password",
	"jwt_secret":     "jwt_secret",
	"redis_password": "redis_password",
}

// LoadConfig builds the configuration from environment variables and, outside
// CI, Docker secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	v := viper.New()
	setDefaults(v, env)
	v.AutomaticEnv()

	if env != CI {
		if err := loadSecrets(v); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:      v.GetString("server_port"),
		ServerHost:      v.GetString("server_host"),
		DatabaseURL:     v.GetString("database_url"),
		DBHost:          v.GetString("db_host"),
		DBPort:          v.GetString("db_port"),
		DBUser:          v.GetString("db_user"),
		DBPassword:      v.GetString("db_password"),
		DBName:          v.GetString("db_name"),
		DBSSLMode:       v.GetString("db_ssl_mode"),
		RedisHost:       v.GetString("redis_host"),
		RedisPort:       v.GetString("redis_port"),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		RedisURL:        v.GetString("redis_url"),
		JWTSecret:       v.GetString("jwt_secret"),
		FrontendOrigins: splitList(v.GetString("frontend_origins")),
		S3Bucket:        v.GetString("s3_bucket_name"),
		AWSRegion:       v.GetString("aws_region"),
		MediaPrefix:     strings.Trim(v.GetString("media_prefix"), "/"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		MigrationsDir:   v.GetString("migrations_dir"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server_port", "8000")
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("frontend_origins", "http://localhost:5173")
	v.SetDefault("media_prefix", "recipes")
	v.SetDefault("log_level", "info")
	v.SetDefault("migrations_dir", "migrations")

	if env == Development || env == Test {
		v.SetDefault("database_url", "sqlite://./recipefy.db")
		v.SetDefault("log_format", "console")
	} else {
		v.SetDefault("log_format", "json")
	}
}

// loadSecrets overrides sensitive values with Docker secrets when present.
func loadSecrets(v *viper.Viper) error {
	dir := secretsDir()
	for file, key := range secretKeys {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read secret %s: %v", file, err)
		}
		v.Set(key, strings.TrimSpace(string(content)))
	}
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	data, err := os.ReadFile(filepath.Join(secretsDir(), name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UsesSQLite reports whether the configured database is an embedded sqlite file.
func (c *Config) UsesSQLite() bool {
	return strings.HasPrefix(c.DatabaseURL, "sqlite://")
}

// DSN returns the gorm connection string for the configured database.
func (c *Config) DSN() string {
	if c.UsesSQLite() {
		path := strings.TrimPrefix(c.DatabaseURL, "sqlite://")
		if path == "" {
			return ":memory:"
		}
		return path
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns host:port for the redis client, or "" when redis is not
// configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
