package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// FocusFlow specifics
	Storage        StorageConfig
	Scheduler      SchedulerConfig
	Parser         ParserConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	SQLitePath string
}

// WeightsConfig holds the raw scorer weights. They are normalized by the scorer.
type WeightsConfig struct {
	Urgency  float64
	Priority float64
	Focus    float64
}

type SchedulerConfig struct {
	Timezone              string
	EMAAlpha              float64
	Weights               WeightsConfig
	UrgencyHorizonHours   float64
	AutoCompleteThreshold float64
	OptimizeLimit         int
}

type ParserConfig struct {
	UpstreamEnabled bool
	UpstreamTimeout time.Duration
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Enabled reports whether calendar time blocking is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.EMAAlpha = viper.GetFloat64("scheduler.ema_alpha")
	cfg.Scheduler.Weights.Urgency = viper.GetFloat64("scheduler.weights.urgency")
	cfg.Scheduler.Weights.Priority = viper.GetFloat64("scheduler.weights.priority")
	cfg.Scheduler.Weights.Focus = viper.GetFloat64("scheduler.weights.focus")
	cfg.Scheduler.UrgencyHorizonHours = viper.GetFloat64("scheduler.urgency_horizon_hours")
	cfg.Scheduler.AutoCompleteThreshold = viper.GetFloat64("scheduler.auto_complete_threshold")
	cfg.Scheduler.OptimizeLimit = viper.GetInt("scheduler.optimize_limit")

	cfg.Parser.UpstreamEnabled = viper.GetBool("parser.upstream_enabled")
	cfg.Parser.UpstreamTimeout = viper.GetDuration("parser.upstream_timeout")
	cfg.Parser.RateLimitPerMin = viper.GetInt("parser.rate_limit_per_min")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					})
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone %q: %w", c.Scheduler.Timezone, err)
	}
	if c.Scheduler.EMAAlpha <= 0 || c.Scheduler.EMAAlpha > 1 {
		return fmt.Errorf("scheduler.ema_alpha must lie in (0,1], got %v", c.Scheduler.EMAAlpha)
	}
	w := c.Scheduler.Weights
	if w.Urgency < 0 || w.Priority < 0 || w.Focus < 0 {
		return fmt.Errorf("scheduler.weights must not be negative")
	}
	if w.Urgency+w.Priority+w.Focus == 0 {
		return fmt.Errorf("scheduler.weights must not all be zero")
	}
	if c.Scheduler.UrgencyHorizonHours <= 0 {
		return fmt.Errorf("scheduler.urgency_horizon_hours must be positive")
	}
	if c.Scheduler.AutoCompleteThreshold < 0 || c.Scheduler.AutoCompleteThreshold > 1 {
		return fmt.Errorf("scheduler.auto_complete_threshold must lie in [0,1]")
	}
	if c.Parser.UpstreamEnabled {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.sqlite_path", "focusflow.db")

	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.ema_alpha", 0.3)
	viper.SetDefault("scheduler.weights.urgency", 0.4)
	viper.SetDefault("scheduler.weights.priority", 0.35)
	viper.SetDefault("scheduler.weights.focus", 0.25)
	viper.SetDefault("scheduler.urgency_horizon_hours", 72)
	viper.SetDefault("scheduler.auto_complete_threshold", 0.7)
	viper.SetDefault("scheduler.optimize_limit", 10)

	viper.SetDefault("parser.upstream_enabled", false)
	viper.SetDefault("parser.upstream_timeout", "2s")
	viper.SetDefault("parser.rate_limit_per_min", 30)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "200ms")
	viper.SetDefault("llm.max_total_timeout", "2s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("parser.upstream_enabled is set but no llm.providers are configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
