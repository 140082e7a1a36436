package config

import (
	"os"
	"testing"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
)

// clearEnv unsets every CHECKCRATES_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CHECKCRATES_REGISTRY_URL", "CHECKCRATES_USER_AGENT", "CHECKCRATES_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHECKCRATES_REGISTRY_URL", "http://127.0.0.1:8080")
	t.Setenv("CHECKCRATES_USER_AGENT", "mirror-check/1.0")
	t.Setenv("CHECKCRATES_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RegistryURL != "http://127.0.0.1:8080" {
		t.Errorf("RegistryURL = %q", cfg.RegistryURL)
	}
	if cfg.UserAgent != "mirror-check/1.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad debug bool", "CHECKCRATES_DEBUG", "maybe"},
		{"bad registry scheme", "CHECKCRATES_REGISTRY_URL", "ftp://crates.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
				t.Errorf("Load() error = %v, want %s", err, apperrors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error: %v", err)
	}

	cfg.UserAgent = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an empty user agent")
	}
}
