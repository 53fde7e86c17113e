// Package rules loads user-defined detection patterns from YAML files and
// compiles them into the Pattern shape the matcher expects. Compilation
// failures surface here, before any rule reaches the matcher.
package rules

import (
	"fmt"
	"os"
	"regexp"

	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"gopkg.in/yaml.v3"
)

type (
	// File is the on-disk schema of a rules file.
	File struct {
		Version  string `yaml:"version,omitempty"`
		Patterns []Rule `yaml:"patterns"`
	}

	// Rule is one user-defined pattern before compilation.
	Rule struct {
		ID          string                  `yaml:"id"`
		Name        string                  `yaml:"name"`
		Description string                  `yaml:"description,omitempty"`
		Regex       string                  `yaml:"regex"`
		Global      bool                    `yaml:"global,omitempty"`
		Severity    string                  `yaml:"severity"`
		Category    string                  `yaml:"category"`
		Suggestion  string                  `yaml:"suggestion,omitempty"`
		Examples    *models.PatternExamples `yaml:"examples,omitempty"`
	}
)

// Load reads and compiles the rules file at path.
func Load(path string) ([]models.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrRulesFileNotFound.WithContext("path", path)
		}
		return nil, apperrors.NewAppError(apperrors.TypeRules, "failed to read the rules file", err)
	}
	return Parse(data)
}

// Parse compiles raw YAML into patterns. The whole load fails on the first
// bad rule so a typo can't silently drop a team convention.
func Parse(data []byte) ([]models.Pattern, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.ErrRulesFileInvalid.WithError(err)
	}

	patterns := make([]models.Pattern, 0, len(file.Patterns))
	seen := make(map[string]bool)
	for i, rule := range file.Patterns {
		p, err := compile(rule)
		if err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, ruleError(rule.ID, fmt.Errorf("duplicate rule id at entry %d", i+1))
		}
		seen[p.ID] = true
		if p.Version == "" {
			p.Version = file.Version
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func compile(rule Rule) (models.Pattern, error) {
	if rule.ID == "" {
		return models.Pattern{}, ruleError(rule.Name, fmt.Errorf("missing id"))
	}
	if rule.Regex == "" {
		return models.Pattern{}, ruleError(rule.ID, fmt.Errorf("missing regex"))
	}

	re, err := regexp.Compile(rule.Regex)
	if err != nil {
		return models.Pattern{}, ruleError(rule.ID, fmt.Errorf("invalid regex: %w", err))
	}

	severity := models.Severity(rule.Severity)
	if !severity.IsValid() {
		return models.Pattern{}, ruleError(rule.ID, fmt.Errorf("unknown severity %q", rule.Severity))
	}
	category := models.Category(rule.Category)
	if !category.IsValid() {
		return models.Pattern{}, ruleError(rule.ID, fmt.Errorf("unknown category %q", rule.Category))
	}

	name := rule.Name
	if name == "" {
		name = rule.ID
	}

	return models.Pattern{
		ID:          rule.ID,
		Name:        name,
		Description: rule.Description,
		Regex:       re,
		Global:      rule.Global,
		Severity:    severity,
		Category:    category,
		Suggestion:  rule.Suggestion,
		Examples:    rule.Examples,
	}, nil
}

func ruleError(id string, err error) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.TypeRules, "invalid rule definition", err).
		WithContext("rule", id).
		WithSuggestion("Fix the rule in your rules file and run the command again")
}
