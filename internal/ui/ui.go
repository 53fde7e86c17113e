package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/models"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	SparkEmoji   = Accent.Sprint("✨")
)

// Spinner wraps the terminal spinner used while git commands run.
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner creates a spinner with an initial message.
func NewSpinner(initialMessage string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
	)
	return &Spinner{spinner: s}
}

func (s *Spinner) Start() { s.spinner.Start() }

func (s *Spinner) Stop() { s.spinner.Stop() }

func (s *Spinner) UpdateMessage(m string) { s.spinner.Suffix = " " + m }

// SeverityBadge renders a colored tag for a severity level.
func SeverityBadge(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return Error.Sprint("[error]")
	case models.SeverityWarning:
		return Warning.Sprint("[warning]")
	default:
		return Info.Sprint("[info]")
	}
}

// PrintValidationResult writes a human-readable summary of one validation
// pass to stdout.
func PrintValidationResult(result models.ValidationResult) {
	if result.IsValid {
		fmt.Printf("%s %s\n", SuccessEmoji, Success.Sprint("valid"))
	} else {
		fmt.Printf("%s %s\n", ErrorEmoji, Error.Sprint("invalid"))
	}

	fmt.Printf("%s %s\n", Dim.Sprint("score:"), formatScore(result.QualityScore))

	for _, e := range result.Errors {
		fmt.Printf("  %s %s\n", Error.Sprint("✗"), e)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  %s %s\n", Warning.Sprint("!"), w)
	}
	for _, s := range result.Suggestions {
		fmt.Printf("  %s %s\n", Accent.Sprint("→"), s)
	}
}

// PrintMatches writes the pattern matches with their severity badges.
func PrintMatches(matches []models.PatternMatch) {
	for _, m := range matches {
		fmt.Printf("  %s %s %s\n", SeverityBadge(m.Severity), m.Name, Dim.Sprintf("(%s)", m.PatternID))
		if m.MatchedText != "" {
			fmt.Printf("      %s %q\n", Dim.Sprint("matched:"), m.MatchedText)
		}
		if m.Suggestion != "" {
			fmt.Printf("      %s %s\n", Accent.Sprint("→"), m.Suggestion)
		}
	}
}

// formatScore colors the quality score: green when healthy, yellow when
// middling, red when poor.
func formatScore(score float64) string {
	text := fmt.Sprintf("%.2f", score)
	switch {
	case score >= 0.8:
		return Success.Sprint(text)
	case score >= 0.5:
		return Warning.Sprint(text)
	default:
		return Error.Sprint(text)
	}
}

// PrintError writes an error with its suggestion when it carries one.
func PrintError(err error) {
	fmt.Printf("%s %s\n", ErrorEmoji, err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Suggestion != "" {
		fmt.Printf("   %s %s\n", Accent.Sprint("→"), appErr.Suggestion)
	}
}
