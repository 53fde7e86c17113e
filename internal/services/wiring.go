package services

import (
	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/patterns"
	"github.com/thomas-vilte/commitsmith/internal/rules"
	"github.com/thomas-vilte/commitsmith/internal/validation"
	"github.com/thomas-vilte/commitsmith/internal/warnings"
)

// NewReviewServiceFromConfig assembles the full pipeline the way the
// commands need it: built-in catalog plus any custom rules, with the
// persisted disabled and dismissed pattern ids applied.
func NewReviewServiceFromConfig(cfg *config.Config, t *i18n.Translations, opts models.ValidationOptions) (*ReviewService, error) {
	matcherCfg := patterns.DefaultMatcherConfig()

	if cfg.RulesFile != "" {
		custom, err := rules.Load(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		matcherCfg.CustomPatterns = custom
	}

	matcher := patterns.NewMatcher(matcherCfg)
	for _, id := range cfg.DisabledPatterns {
		matcher.DisablePattern(id)
	}

	manager := warnings.NewManager()
	for _, id := range cfg.DismissedPatterns {
		manager.PersistentlyDismissPattern(id)
	}

	validator := validation.NewMessageValidator(t)

	return NewReviewService(validator, matcher, manager, opts), nil
}
