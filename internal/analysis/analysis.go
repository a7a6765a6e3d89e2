// Package analysis suggests a complaint category from its free-text
// description. The classifier is optional; every failure leaves the caller's
// current category untouched.
package analysis

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/models"
	"context"
	"strings"

	"go.uber.org/zap"
)

// Classifier returns a raw category label for a description.
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}

// Suggester validates classifier output against the known categories.
type Suggester struct {
	Classifier Classifier
	MinWords   int

	logger *zap.Logger
}

// NewSuggester creates a Suggester. A nil classifier disables suggestions.
func NewSuggester(c Classifier, logger *zap.Logger) *Suggester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Suggester{Classifier: c, MinWords: config.SuggestionMinWords, logger: logger}
}

// Enabled reports whether a classifier is configured.
func (s *Suggester) Enabled() bool { return s != nil && s.Classifier != nil }

// Suggest returns a category for text. ok is false when suggestions are
// disabled, the text is too short, the classifier failed, or its label is not
// exactly one of the known categories.
func (s *Suggester) Suggest(ctx context.Context, text string) (models.Category, bool) {
	if !s.Enabled() {
		return models.CategoryNone, false
	}
	if len(strings.Fields(text)) < s.MinWords {
		return models.CategoryNone, false
	}

	label, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("Category suggestion failed", zap.Error(err))
		}
		return models.CategoryNone, false
	}

	category, ok := models.ParseCategory(label)
	if !ok {
		s.logger.Debug("Ignoring unknown suggested category", zap.String("label", label))
		return models.CategoryNone, false
	}
	return category, true
}
