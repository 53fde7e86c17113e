package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
)

func newValidator(t *testing.T) *MessageValidator {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewMessageValidator(trans)
}

func TestValidateMessage(t *testing.T) {
	v := newValidator(t)

	t.Run("plain short message is valid", func(t *testing.T) {
		result := v.ValidateMessage("Fix bug", models.ValidationOptions{
			SubjectLengthLimit: 50,
		})

		assert.True(t, result.IsValid)
		assert.False(t, result.HasBody)
		assert.Equal(t, 7, result.SubjectLength)
		assert.Empty(t, result.Errors)
		assert.Nil(t, result.ConventionalParts)
	})

	t.Run("empty message is an error", func(t *testing.T) {
		result := v.ValidateMessage("", models.ValidationOptions{SubjectLengthLimit: 50})

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "empty")
	})

	t.Run("subject and body are split on the first line", func(t *testing.T) {
		result := v.ValidateMessage("feat: add cache\n\nKeeps hot entries in memory.\n", models.ValidationOptions{SubjectLengthLimit: 50})

		assert.Equal(t, "feat: add cache", result.Subject)
		assert.Equal(t, "Keeps hot entries in memory.", result.Body)
		assert.True(t, result.HasBody)
		assert.Equal(t, len(result.Body), result.BodyLength)
	})

	t.Run("non conventional message in conventional mode", func(t *testing.T) {
		result := v.ValidateMessage("implement new feature", models.ValidationOptions{
			ConventionalCommit: true,
			SubjectLengthLimit: 50,
		})

		assert.False(t, result.IsConventionalCommit)
		require.NotNil(t, result.ConventionalParts)
		assert.False(t, result.ConventionalParts.IsValid)
		assert.NotEmpty(t, result.Errors)
		assert.Contains(t, strings.Join(result.Errors, " "), "conventional")
	})

	t.Run("conventional message sets the parts", func(t *testing.T) {
		result := v.ValidateMessage("feat(ui): add new button component", models.ValidationOptions{
			ConventionalCommit: true,
			SubjectLengthLimit: 50,
		})

		assert.True(t, result.IsValid)
		assert.True(t, result.IsConventionalCommit)
		require.NotNil(t, result.ConventionalParts)
		assert.Equal(t, "feat", result.ConventionalParts.Type)
		assert.Equal(t, "ui", result.ConventionalParts.Scope)
	})

	t.Run("overlong subject is an error only in conventional mode", func(t *testing.T) {
		long := "fix: " + strings.Repeat("x", 60)

		strict := v.ValidateMessage(long, models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})
		assert.False(t, strict.IsValid)
		assert.True(t, strict.IsSubjectTooLong)

		lax := v.ValidateMessage(long, models.ValidationOptions{SubjectLengthLimit: 50})
		assert.True(t, lax.IsValid)
		assert.True(t, lax.IsSubjectTooLong)
		assert.NotEmpty(t, lax.Warnings)
	})

	t.Run("subject near the limit gets an advisory warning", func(t *testing.T) {
		subject := strings.Repeat("x", 48)
		result := v.ValidateMessage(subject, models.ValidationOptions{SubjectLengthLimit: 50})

		assert.True(t, result.IsValid)
		assert.NotEmpty(t, result.Warnings)
	})

	t.Run("missing body on a non-trivial change is a warning", func(t *testing.T) {
		result := v.ValidateMessage("refactor: restructure the pattern registry", models.ValidationOptions{SubjectLengthLimit: 50})

		assert.True(t, result.IsValid)
		assert.Contains(t, strings.Join(result.Warnings, " "), "body")
	})

	t.Run("undocumented breaking change is a warning", func(t *testing.T) {
		result := v.ValidateMessage("feat(api)!: change response format", models.ValidationOptions{
			ConventionalCommit: true,
			SubjectLengthLimit: 50,
		})

		assert.True(t, result.IsValid)
		assert.Contains(t, strings.Join(result.Warnings, " "), "BREAKING CHANGE")
	})

	t.Run("suggestions only appear when requested", func(t *testing.T) {
		without := v.ValidateMessage("implement new feature", models.ValidationOptions{SubjectLengthLimit: 50})
		assert.Empty(t, without.Suggestions)

		with := v.ValidateMessage("implement new feature", models.ValidationOptions{
			SubjectLengthLimit: 50,
			ProvideSuggestions: true,
		})
		assert.NotEmpty(t, with.Suggestions)
		assert.Contains(t, strings.Join(with.Suggestions, " "), "feat:")
	})

	t.Run("zero options fall back to defaults", func(t *testing.T) {
		result := v.ValidateMessage("Fix bug", models.ValidationOptions{})
		assert.True(t, result.IsValid)
	})
}

func TestQualityScore(t *testing.T) {
	v := newValidator(t)

	t.Run("score stays within bounds", func(t *testing.T) {
		messages := []string{
			"",
			"fix",
			"Fix bug",
			"feat(ui): add new button component\n\nWith a body.",
			strings.Repeat("x", 200),
		}
		for _, msg := range messages {
			result := v.ValidateMessage(msg, models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})
			assert.GreaterOrEqual(t, result.QualityScore, 0.0, "%q", msg)
			assert.LessOrEqual(t, result.QualityScore, 1.0, "%q", msg)
		}
	})

	t.Run("adding an error does not increase the score", func(t *testing.T) {
		// Same message; conventional mode adds a not-conventional error.
		lax := v.ValidateMessage("implement new feature", models.ValidationOptions{SubjectLengthLimit: 50})
		strict := v.ValidateMessage("implement new feature", models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})

		assert.True(t, len(strict.Errors) > len(lax.Errors))
		assert.LessOrEqual(t, strict.QualityScore, lax.QualityScore)
	})

	t.Run("invalid message can still score above zero", func(t *testing.T) {
		result := v.ValidateMessage("implement new feature", models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})

		assert.False(t, result.IsValid)
		assert.Greater(t, result.QualityScore, 0.0)
	})

	t.Run("conventional format and body raise the score", func(t *testing.T) {
		plain := v.ValidateMessage("add button", models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})
		rich := v.ValidateMessage("feat(ui): add button\n\nExplains why.", models.ValidationOptions{ConventionalCommit: true, SubjectLengthLimit: 50})

		assert.Greater(t, rich.QualityScore, plain.QualityScore)
	})
}
