package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/commitsmith/internal/models"
)

type Config struct {
	Language           string `json:"language"`
	SubjectLengthLimit int    `json:"subject_length_limit"`
	ConventionalCommit bool   `json:"conventional_commit"`
	ProvideSuggestions bool   `json:"provide_suggestions"`
	PathFile           string `json:"path_file"`

	// RulesFile points at an optional YAML file with custom detection
	// patterns; TemplatesFile at the commit template definitions.
	RulesFile     string `json:"rules_file,omitempty"`
	TemplatesFile string `json:"templates_file,omitempty"`

	// DisabledPatterns lists pattern ids the user silenced across sessions.
	DisabledPatterns []string `json:"disabled_patterns,omitempty"`

	// DismissedPatterns lists pattern ids whose warnings were permanently
	// dismissed during a compose session. They are still detected, just not
	// surfaced as warnings.
	DismissedPatterns []string `json:"dismissed_patterns,omitempty"`
}

const (
	defaultLang               = "en"
	defaultSubjectLengthLimit = 50
)

const configDirName = ".commitsmith"

// LoadConfig reads the configuration from path. When path is a directory,
// the file lives at <path>/.commitsmith/config.json and is created with
// defaults on first use.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create the config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode the config file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:           defaultLang,
		SubjectLengthLimit: defaultSubjectLengthLimit,
		ConventionalCommit: false,
		ProvideSuggestions: false,
		PathFile:           path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create the config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode the default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save the default config: %w", err)
	}

	return config, nil
}

// SaveConfig validates and writes the configuration back to its file.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode the config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write the config file: %w", err)
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.SubjectLengthLimit <= 0 {
		config.SubjectLengthLimit = defaultSubjectLengthLimit
	}
	if config.SubjectLengthLimit > 200 {
		return fmt.Errorf("subject_length_limit %d is unreasonably large", config.SubjectLengthLimit)
	}
	return nil
}

// ValidationOptions maps the stored settings onto one validation pass.
func (c *Config) ValidationOptions() models.ValidationOptions {
	return models.ValidationOptions{
		ConventionalCommit: c.ConventionalCommit,
		SubjectLengthLimit: c.SubjectLengthLimit,
		ProvideSuggestions: c.ProvideSuggestions,
	}
}

// IsPatternDisabled reports whether the id is in the persisted disabled set.
func (c *Config) IsPatternDisabled(id string) bool {
	for _, d := range c.DisabledPatterns {
		if d == id {
			return true
		}
	}
	return false
}

// DisablePattern adds the id to the persisted disabled set. Idempotent.
func (c *Config) DisablePattern(id string) {
	if !c.IsPatternDisabled(id) {
		c.DisabledPatterns = append(c.DisabledPatterns, id)
	}
}

// EnablePattern removes the id from the persisted disabled set.
func (c *Config) EnablePattern(id string) {
	kept := c.DisabledPatterns[:0]
	for _, d := range c.DisabledPatterns {
		if d != id {
			kept = append(kept, d)
		}
	}
	c.DisabledPatterns = kept
}

// DismissPattern records a permanent warning dismissal. Idempotent.
func (c *Config) DismissPattern(id string) {
	for _, d := range c.DismissedPatterns {
		if d == id {
			return
		}
	}
	c.DismissedPatterns = append(c.DismissedPatterns, id)
}

// UndismissPattern removes the id from the persisted dismissal set.
func (c *Config) UndismissPattern(id string) {
	kept := c.DismissedPatterns[:0]
	for _, d := range c.DismissedPatterns {
		if d != id {
			kept = append(kept, d)
		}
	}
	c.DismissedPatterns = kept
}
