package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Gemini.APIKey != "" {
		t.Skip("GEMINI_API_KEY is set in the environment")
	}
	if len(cfg.Gemini.Models) != 2 || cfg.Gemini.Models[0] != "gemini-2.5-flash" {
		t.Errorf("unexpected default models: %v", cfg.Gemini.Models)
	}
	if cfg.Gemini.MinRequestInterval != 2*time.Second {
		t.Errorf("unexpected min request interval: %v", cfg.Gemini.MinRequestInterval)
	}
	if cfg.Gemini.MaxRetries != 2 || cfg.Gemini.BackoffBase != 3*time.Second {
		t.Errorf("unexpected retry policy: %d / %v", cfg.Gemini.MaxRetries, cfg.Gemini.BackoffBase)
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_MODELS", " a , ,b ")
	got := getEnvAsList("TEST_MODELS", []string{"x"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected list: %v", got)
	}

	t.Setenv("TEST_MODELS", " , ")
	got = getEnvAsList("TEST_MODELS", []string{"x"})
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("expected default for blank list, got %v", got)
	}
}

func TestGetEnvAsFloat32(t *testing.T) {
	t.Setenv("TEST_TEMPERATURE", "0.7")
	if got := getEnvAsFloat32("TEST_TEMPERATURE", 0.3); got != float32(0.7) {
		t.Errorf("expected 0.7, got %v", got)
	}

	t.Setenv("TEST_TEMPERATURE", "hot")
	if got := getEnvAsFloat32("TEST_TEMPERATURE", 0.3); got != float32(0.3) {
		t.Errorf("expected default, got %v", got)
	}
}
