package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Supported completion providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Weather  WeatherConfig  `yaml:"weather"`
	Calendar CalendarConfig `yaml:"calendar"`
	Prompts  PromptsConfig  `yaml:"prompts"`
	Session  SessionConfig  `yaml:"session"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	MaxUploadBytes  int64           `yaml:"maxUploadBytes"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig selects and configures the text and vision completion provider.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	TextModel   string        `yaml:"textModel"`
	VisionModel string        `yaml:"visionModel"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// WeatherConfig points at the OpenWeather forecast endpoint.
type WeatherConfig struct {
	APIBaseURL string        `yaml:"apiBaseUrl"`
	APIKey     string        `yaml:"apiKey"`
	Timeout    time.Duration `yaml:"timeout"`
}

// CalendarConfig controls the optional Google Calendar integration.
// An empty CredentialsFile disables the feature.
type CalendarConfig struct {
	CredentialsFile string `yaml:"credentialsFile"`
	CalendarID      string `yaml:"calendarId"`
	TimeZone        string `yaml:"timeZone"`
}

// PromptsConfig holds the fixed instruction template of every section.
type PromptsConfig struct {
	LocationFinder  string `yaml:"locationFinder"`
	TripPlanner     string `yaml:"tripPlanner"`
	RestaurantHotel string `yaml:"restaurantHotel"`
}

// SessionConfig controls per-browser navigation state.
type SessionConfig struct {
	CookieName string        `yaml:"cookieName"`
	IdleTTL    time.Duration `yaml:"idleTtl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_MAX_UPLOAD_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.HTTP.MaxUploadBytes = parsed
		}
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := firstEnv("LLM_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_TEXT_MODEL"); v != "" {
		cfg.LLM.TextModel = v
	}
	if v := os.Getenv("LLM_VISION_MODEL"); v != "" {
		cfg.LLM.VisionModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.Weather.APIBaseURL = v
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("GOOGLE_CALENDAR_CREDENTIALS"); v != "" {
		cfg.Calendar.CredentialsFile = v
	}
	if v := os.Getenv("CALENDAR_ID"); v != "" {
		cfg.Calendar.CalendarID = v
	}
	if v := os.Getenv("CALENDAR_TIMEZONE"); v != "" {
		cfg.Calendar.TimeZone = v
	}
	if v := os.Getenv("SESSION_IDLE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Session.IdleTTL = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.HTTP.RateLimit.Enabled = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  10 << 20,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerMinute: 30,
				Burst:             10,
			},
		},
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			TextModel:   "gemini-1.5-pro-latest",
			VisionModel: "gemini-1.5-flash",
			Temperature: 0.4,
			Timeout:     60 * time.Second,
		},
		Weather: WeatherConfig{
			APIBaseURL: "https://api.openweathermap.org/data/2.5/forecast",
			Timeout:    10 * time.Second,
		},
		Calendar: CalendarConfig{
			CalendarID: "primary",
			TimeZone:   "Asia/Kolkata",
		},
		Prompts: PromptsConfig{
			LocationFinder: "You are an expert Tourist Guide. Provide:\n" +
				"- Summary of the place\n" +
				"- Location details\n" +
				"- State & Capital\n" +
				"- Coordinates\n" +
				"- Popular nearby places",
			TripPlanner: "You are an expert Tour Planner. Provide recommendations for the given location and days.\n" +
				"- Suggest hidden gems, hotels, must-visit places\n" +
				"- Best time to visit",
			RestaurantHotel: "You are an expert in Restaurant & Hotel Planning. Provide:\n" +
				"- Top 5 restaurants (address & avg cost per cuisine)\n" +
				"- Top 5 hotels (address & avg cost per night)\n" +
				"- Balanced options (not too expensive or cheap)",
		},
		Session: SessionConfig{
			CookieName: "planner_session",
			IdleTTL:    30 * time.Minute,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.MaxUploadBytes <= 0 {
		return errors.New("http.maxUploadBytes must be positive")
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.TextModel) == "" {
		return errors.New("llm.textModel cannot be empty")
	}
	if strings.TrimSpace(c.LLM.VisionModel) == "" {
		return errors.New("llm.visionModel cannot be empty")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	if strings.TrimSpace(c.Weather.APIBaseURL) == "" {
		return errors.New("weather.apiBaseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Calendar.CalendarID) == "" {
		return errors.New("calendar.calendarId cannot be empty")
	}
	if _, err := time.LoadLocation(c.Calendar.TimeZone); err != nil {
		return fmt.Errorf("calendar.timeZone: %w", err)
	}
	if strings.TrimSpace(c.Prompts.LocationFinder) == "" {
		return errors.New("prompts.locationFinder cannot be empty")
	}
	if strings.TrimSpace(c.Prompts.TripPlanner) == "" {
		return errors.New("prompts.tripPlanner cannot be empty")
	}
	if strings.TrimSpace(c.Prompts.RestaurantHotel) == "" {
		return errors.New("prompts.restaurantHotel cannot be empty")
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return errors.New("session.cookieName cannot be empty")
	}
	if c.Session.IdleTTL <= 0 {
		return errors.New("session.idleTtl must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
