// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CV     string `json:"cv,omitempty"`      // Path to structured CV JSON file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Application context
	UserID     string `json:"user_id,omitempty"`     // User UUID (required for behavior history)
	JobID      string `json:"job_id,omitempty"`      // Job identifier for caching and storage
	TargetRole string `json:"target_role,omitempty"` // Role title being applied for
	Industry   string `json:"industry,omitempty"`    // Industry of the target job
	Location   string `json:"location,omitempty"`    // Job location ("remote" or a city)

	// Services
	ScoringEndpoint string `json:"scoring_endpoint,omitempty"` // Remote scoring service base URL
	ScoringAPIKey   string `json:"scoring_api_key,omitempty"`  // Bearer token for the scoring service
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	DatabaseURL     string `json:"database_url,omitempty"`     // PostgreSQL connection URL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills service credentials from environment variables for any field
// the config file left empty. Flags merged later still win.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ScoringEndpoint == "" {
		c.ScoringEndpoint = os.Getenv("SCORING_ENDPOINT")
	}
	if c.ScoringAPIKey == "" {
		c.ScoringAPIKey = os.Getenv("SCORING_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}
