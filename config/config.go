package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Auth          AuthConfig
	HTTPClient    HTTPClientConfig
	ADPList       PlatformConfig
	MentorCruise  PlatformConfig
	Calendly      PlatformConfig
	CalCom        PlatformConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type AuthConfig struct {
	// FrontendAPIToken is an optional static key the front end sends in X-API-Key
	FrontendAPIToken string
}

type HTTPClientConfig struct {
	TimeoutSeconds int
}

// PlatformConfig holds the credential and endpoint of one external platform
type PlatformConfig struct {
	APIKey  string
	BaseURL string
}

// Configured reports whether a credential is present
func (p PlatformConfig) Configured() bool {
	return strings.TrimSpace(p.APIKey) != ""
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("HTTP_CLIENT_TIMEOUT_SECONDS", 10)
	v.SetDefault("ADPLIST_BASE_URL", "https://api.adplist.org/v1")
	v.SetDefault("MENTORCRUISE_BASE_URL", "https://mentorcruise.com/api/v1")
	v.SetDefault("CALENDLY_BASE_URL", "https://api.calendly.com")
	v.SetDefault("CALCOM_BASE_URL", "https://api.cal.com")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "mentor-aggregator")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "mentor-aggregator")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "mentor-aggregator")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Auth: AuthConfig{
			FrontendAPIToken: v.GetString("FRONTEND_API_TOKEN"),
		},
		HTTPClient: HTTPClientConfig{
			TimeoutSeconds: v.GetInt("HTTP_CLIENT_TIMEOUT_SECONDS"),
		},
		ADPList: PlatformConfig{
			APIKey:  v.GetString("ADPLIST_API_KEY"),
			BaseURL: v.GetString("ADPLIST_BASE_URL"),
		},
		MentorCruise: PlatformConfig{
			APIKey:  v.GetString("MENTORCRUISE_API_KEY"),
			BaseURL: v.GetString("MENTORCRUISE_BASE_URL"),
		},
		Calendly: PlatformConfig{
			APIKey:  v.GetString("CALENDLY_API_KEY"),
			BaseURL: v.GetString("CALENDLY_BASE_URL"),
		},
		CalCom: PlatformConfig{
			APIKey:  v.GetString("CALCOM_API_KEY"),
			BaseURL: v.GetString("CALCOM_BASE_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks
func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks if required configuration values are set.
// Platform credentials are optional: a missing key switches that platform to fallback data.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.HTTPClient.TimeoutSeconds < 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT_SECONDS must not be negative")
	}

	platforms := map[string]PlatformConfig{
		"ADPLIST":      c.ADPList,
		"MENTORCRUISE": c.MentorCruise,
		"CALENDLY":     c.Calendly,
		"CALCOM":       c.CalCom,
	}
	for name, p := range platforms {
		if p.Configured() && p.BaseURL == "" {
			return fmt.Errorf("%s_BASE_URL is required when %s_API_KEY is set", name, name)
		}
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode.
// Anything else serves fallback data instead of calling external platforms.
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
