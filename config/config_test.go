package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			Timezone:              "UTC",
			EMAAlpha:              0.3,
			Weights:               WeightsConfig{Urgency: 0.4, Priority: 0.35, Focus: 0.25},
			UrgencyHorizonHours:   72,
			AutoCompleteThreshold: 0.7,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad timezone", mutate: func(c *Config) { c.Scheduler.Timezone = "Mars/Olympus" }, wantErr: "timezone"},
		{name: "alpha zero", mutate: func(c *Config) { c.Scheduler.EMAAlpha = 0 }, wantErr: "ema_alpha"},
		{name: "alpha above one", mutate: func(c *Config) { c.Scheduler.EMAAlpha = 1.2 }, wantErr: "ema_alpha"},
		{name: "negative weight", mutate: func(c *Config) { c.Scheduler.Weights.Focus = -1 }, wantErr: "negative"},
		{name: "zero weights", mutate: func(c *Config) { c.Scheduler.Weights = WeightsConfig{} }, wantErr: "zero"},
		{name: "threshold out of range", mutate: func(c *Config) { c.Scheduler.AutoCompleteThreshold = 2 }, wantErr: "auto_complete_threshold"},
		{name: "upstream without providers", mutate: func(c *Config) { c.Parser.UpstreamEnabled = true }, wantErr: "providers"},
		{
			name: "duplicate provider priority",
			mutate: func(c *Config) {
				c.Parser.UpstreamEnabled = true
				c.LLM.Providers = []ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1},
					{Name: "gemini-pro", Enabled: true, Priority: 1},
				}
			},
			wantErr: "duplicate priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("FOCUSFLOW_TEST_KEY", "secret")
	if got := expandEnvVar("${FOCUSFLOW_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar = %q, want secret", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expandEnvVar = %q, want literal", got)
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 2, "b": 3.0, "c": "x"}
	if getIntFromMap(m, "a") != 2 || getIntFromMap(m, "b") != 3 || getIntFromMap(m, "c") != 0 {
		t.Errorf("unexpected conversions")
	}
}
