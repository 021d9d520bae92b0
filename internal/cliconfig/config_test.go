package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %v, want %v", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		wantBaseURL string
	}{
		{
			name:        "valid minimal config",
			config:      Config{CompanyToken: "c", AccountToken: "a", Timeout: time.Second},
			wantBaseURL: DefaultBaseURL,
		},
		{
			name:    "missing company token",
			config:  Config{AccountToken: "a", Timeout: time.Second},
			wantErr: true,
		},
		{
			name:    "missing account token",
			config:  Config{CompanyToken: "c", Timeout: time.Second},
			wantErr: true,
		},
		{
			name:        "trailing slash trimmed",
			config:      Config{CompanyToken: "c", AccountToken: "a", BaseURL: "http://localhost:8080/v1/", Timeout: time.Second},
			wantBaseURL: "http://localhost:8080/v1",
		},
		{
			name:    "zero timeout",
			config:  Config{CompanyToken: "c", AccountToken: "a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.config.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %v, want %v", tt.config.BaseURL, tt.wantBaseURL)
			}
		})
	}
}

func TestConfig_Masked(t *testing.T) {
	cfg := Config{CompanyToken: "secret-1", AccountToken: "secret-2", BaseURL: DefaultBaseURL}
	masked := cfg.Masked()

	if masked.CompanyToken != "*****" || masked.AccountToken != "*****" {
		t.Errorf("Masked() = %+v, want tokens hidden", masked)
	}
	if cfg.CompanyToken != "secret-1" {
		t.Error("Masked() modified the receiver")
	}
	if (Config{}).Masked().CompanyToken != "" {
		t.Error("Masked() should leave empty tokens empty")
	}
}

func TestConfig_ClientConfig(t *testing.T) {
	cfg := Config{CompanyToken: "c", AccountToken: "a", BaseURL: "http://x", Timeout: 3 * time.Second, Verbose: true}
	cc := cfg.ClientConfig()

	if cc.CompanyToken != "c" || cc.AccountToken != "a" || cc.BaseURL != "http://x" || cc.Timeout != 3*time.Second {
		t.Errorf("ClientConfig() = %+v", cc)
	}
}
