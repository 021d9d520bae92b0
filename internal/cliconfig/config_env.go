package cliconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (WAZAP_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("company-token", os.Getenv("WAZAP_COMPANY_TOKEN"), &cfg.CompanyToken)
	s.setString("account-token", os.Getenv("WAZAP_ACCOUNT_TOKEN"), &cfg.AccountToken)
	s.setString("base-url", os.Getenv("WAZAP_BASE_URL"), &cfg.BaseURL)

	if err := s.setDuration("timeout", os.Getenv("WAZAP_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("WAZAP_VERBOSE"), &cfg.Verbose)

	return nil
}
