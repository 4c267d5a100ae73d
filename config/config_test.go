package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "production release",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name     string
		appEnv   string
		expected bool
	}{
		{name: "production", appEnv: "production", expected: true},
		{name: "development", appEnv: "development", expected: false},
		{name: "staging", appEnv: "staging", expected: false},
		{name: "empty", appEnv: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{AppEnv: tt.appEnv}}
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8081", AllowedOrigins: []string{"http://localhost:3000"}},
			ADPList: PlatformConfig{
				APIKey:  "key",
				BaseURL: "https://api.adplist.org/v1",
			},
		}
	}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "no credentials is valid", mutate: func(c *Config) { c.ADPList = PlatformConfig{} }},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, errorMsg: "PORT is required"},
		{name: "missing origins", mutate: func(c *Config) { c.Server.AllowedOrigins = nil }, errorMsg: "ALLOWED_CORS_ORIGINS is required"},
		{
			name:     "key without base url",
			mutate:   func(c *Config) { c.CalCom = PlatformConfig{APIKey: "cal"} },
			errorMsg: "CALCOM_BASE_URL is required when CALCOM_API_KEY is set",
		},
		{
			name:     "negative timeout",
			mutate:   func(c *Config) { c.HTTPClient.TimeoutSeconds = -1 },
			errorMsg: "HTTP_CLIENT_TIMEOUT_SECONDS must not be negative",
		},
		{
			name:     "profiling without endpoint",
			mutate:   func(c *Config) { c.Profiling.Enabled = true },
			errorMsg: "O11Y_PROFILING_ENDPOINT is required when profiling is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errorMsg, err.Error())
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ADPLIST_API_KEY", "adp-key")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.ADPList.Configured())
	assert.Equal(t, "https://api.adplist.org/v1", cfg.ADPList.BaseURL)
	assert.False(t, cfg.MentorCruise.Configured())
	assert.Equal(t, 10, cfg.HTTPClient.TimeoutSeconds)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "mentor-aggregator", cfg.Observability.ServiceName)
}
