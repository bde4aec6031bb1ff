package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, ProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gemini-1.5-flash", cfg.LLM.VisionModel)
	require.Equal(t, "primary", cfg.Calendar.CalendarID)
	require.Equal(t, "Asia/Kolkata", cfg.Calendar.TimeZone)
	require.Empty(t, cfg.Calendar.CredentialsFile)
	require.Contains(t, cfg.Prompts.LocationFinder, "Tourist Guide")
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
http:
  address: ":9000"
llm:
  provider: openai
  textModel: gpt-4o-mini
  visionModel: gpt-4o-mini
weather:
  apiKey: from-file
calendar:
  timeZone: Europe/Paris
session:
  idleTtl: 5m
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "from-env", cfg.Weather.APIKey)
	require.Equal(t, "/secrets/sa.json", cfg.Calendar.CredentialsFile)
	require.Equal(t, "Europe/Paris", cfg.Calendar.TimeZone)
	require.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Provider = "mistral" },
			wantErr: `llm.provider "mistral" is not supported`,
		},
		{
			name:    "empty prompt",
			mutate:  func(c *Config) { c.Prompts.TripPlanner = "  " },
			wantErr: "prompts.tripPlanner cannot be empty",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *Config) { c.Calendar.TimeZone = "Mars/Olympus" },
			wantErr: "calendar.timeZone",
		},
		{
			name: "rate limit without burst",
			mutate: func(c *Config) {
				c.HTTP.RateLimit.Enabled = true
				c.HTTP.RateLimit.Burst = 0
			},
			wantErr: "http.rateLimit.burst must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}

	require.NoError(t, defaultConfig().Validate())
}
