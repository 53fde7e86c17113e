package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle: embedded English defaults plus
// any locale overrides found under localesPath (active.*.toml files).
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}
	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[validation.error_empty_subject]
	other = "Commit message cannot be empty"

	[validation.error_subject_too_long]
	other = "Subject is {{.Length}} characters; conventional commits require at most {{.Limit}}"

	[validation.error_not_conventional]
	other = "Message does not follow the conventional commit format (type(scope): description)"

	[validation.warning_subject_too_long]
	other = "Subject is {{.Length}} characters; keep it at or under {{.Limit}}"

	[validation.warning_subject_near_limit]
	other = "Subject is close to the {{.Limit}} character limit"

	[validation.warning_missing_body]
	other = "Consider adding a body explaining what changed and why"

	[validation.warning_breaking_undocumented]
	other = "Breaking change is not documented: add a BREAKING CHANGE: footer"

	[validation.suggest_conventional_prefix]
	other = "Consider adding a type prefix like 'feat:' or 'fix:'"

	[validation.suggest_add_body]
	other = "Add a body describing the motivation for the change"

	[validation.suggest_shorten_subject]
	other = "Shorten the subject to {{.Limit}} characters and move the detail into the body"

	[check_command_usage]
	other = "Validate a commit message"

	[check_command_description]
	other = "Parse and validate a commit message, score its quality and scan it against the pattern catalog"

	[check.flag_message]
	other = "Message text to validate"

	[check.flag_file]
	other = "Read the message from a file ('-' for stdin)"

	[check.flag_conventional]
	other = "Require the conventional commit format"

	[check.flag_limit]
	other = "Subject length limit"

	[check.flag_suggestions]
	other = "Include improvement suggestions"

	[check.result_valid]
	other = "Message is valid"

	[check.result_invalid]
	other = "Message is invalid"

	[check.quality_score]
	other = "Quality score: {{.Score}}"

	[check.no_issues]
	other = "No problematic patterns detected"

	[check.error_no_message]
	other = "Provide a message with -m or a file with -F"

	[hook_command_usage]
	other = "Run as a git commit-msg hook"

	[hook_command_description]
	other = "Reads the message file git passes to the commit-msg hook and blocks the commit when validation fails"

	[hook.blocked]
	other = "Commit blocked: the message has {{.Count}} problem(s)"

	[hook.passed]
	other = "Commit message looks good"

	[compose_command_usage]
	other = "Compose and commit a message interactively"

	[compose_command_description]
	other = "Write a message (flag, template or $EDITOR), review the warnings, dismiss or fix them, then commit"

	[compose.flag_message]
	other = "Start from this message instead of opening the editor"

	[compose.flag_template]
	other = "Start from a named template"

	[compose.no_staged_changes]
	other = "No staged changes to commit.\nUse 'git add' to stage your changes first"

	[compose.aborted]
	other = "Compose aborted; nothing committed"

	[compose.commit_created]
	other = "Commit created successfully with message:"

	[compose.error_no_editor]
	other = "No editor found: set $EDITOR or pass -m"

	[patterns_command_usage]
	other = "Inspect and manage detection patterns"

	[patterns.list_usage]
	other = "List the registered patterns"

	[patterns.show_usage]
	other = "Show one pattern in detail, including examples"

	[patterns.test_usage]
	other = "Scan a message and report which patterns fire"

	[patterns.disable_usage]
	other = "Disable a pattern (persisted in the config)"

	[patterns.enable_usage]
	other = "Re-enable a previously disabled pattern"

	[patterns.not_found]
	other = "No pattern registered with id '{{.ID}}'"

	[patterns.disabled_ok]
	other = "Pattern '{{.ID}}' disabled"

	[patterns.enabled_ok]
	other = "Pattern '{{.ID}}' enabled"

	[patterns.test_no_matches]
	other = "No patterns fire on this message"

	[config_command_usage]
	other = "Manage commitsmith configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_usage]
	other = "Set a configuration value"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_edit_usage]
	other = "Open the configuration in your editor"

	[config.saved]
	other = "Configuration saved"

	[config.unknown_key]
	other = "Unknown configuration key '{{.Key}}'. Valid keys: {{.Keys}}"

	[config_save.error_no_editor]
	other = "No editor found: set the $EDITOR environment variable"

	[config_save.error_opening_editor]
	other = "Failed to open the editor"

	[app_usage]
	other = "Validate commit messages and catch bad habits before they land"

	[app_description]
	other = "commitsmith parses, validates and scores commit messages, scans them against a pattern catalog of common mistakes, and walks you through the warnings before committing"

	[help_command_usage]
	other = "Show help"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"

	[operation_cancelled]
	other = "Operation cancelled"
	`
