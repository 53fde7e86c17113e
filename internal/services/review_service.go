package services

import (
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/patterns"
	"github.com/thomas-vilte/commitsmith/internal/validation"
	"github.com/thomas-vilte/commitsmith/internal/warnings"
)

// Review bundles everything one validation pass produces.
type Review struct {
	Result  models.ValidationResult
	Matches []models.PatternMatch
}

// ReviewService drives one editing session: it validates the message, scans
// it for problematic patterns and keeps the warning manager in sync so the
// presentation layer only deals with the filtered warnings.
type ReviewService struct {
	validator *validation.MessageValidator
	matcher   *patterns.Matcher
	manager   *warnings.Manager
	opts      models.ValidationOptions
}

func NewReviewService(validator *validation.MessageValidator, matcher *patterns.Matcher, manager *warnings.Manager, opts models.ValidationOptions) *ReviewService {
	return &ReviewService{
		validator: validator,
		matcher:   matcher,
		manager:   manager,
		opts:      opts,
	}
}

// Analyze validates and scans message, replacing the manager's active
// warnings with the fresh matches (minus permanently dismissed patterns).
func (s *ReviewService) Analyze(message string) Review {
	result := s.validator.ValidateMessage(message, s.opts)
	analysis := s.matcher.AnalyzeMessage(message, nil)
	s.manager.SetWarnings(analysis.Matches)

	return Review{
		Result:  result,
		Matches: analysis.Matches,
	}
}

// ActiveWarnings returns the warnings that survived dismissal filtering.
func (s *ReviewService) ActiveWarnings() []models.PatternMatch {
	return s.manager.Warnings()
}

// Manager exposes the session's warning manager for dismissal actions.
func (s *ReviewService) Manager() *warnings.Manager {
	return s.manager
}

// Matcher exposes the session's pattern matcher.
func (s *ReviewService) Matcher() *patterns.Matcher {
	return s.matcher
}

// HasBlockingIssues reports whether the message is invalid or an
// error-severity pattern is still active after dismissals.
func (s *ReviewService) HasBlockingIssues(review Review) bool {
	if !review.Result.IsValid {
		return true
	}
	for _, w := range s.manager.Warnings() {
		if w.Severity == models.SeverityError {
			return true
		}
	}
	return false
}
