package analysis_test

import (
	"complaintbox/backend/internal/analysis"
	"complaintbox/backend/internal/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, description string) (string, error) {
	args := m.Called(ctx, description)
	return args.String(0), args.Error(1)
}

const longText = "The projector in lecture hall two keeps flickering"

func TestSuggest_AcceptsExactLabel(t *testing.T) {
	// Arrange
	ctx := context.Background()
	classifier := new(MockClassifier)
	classifier.On("Classify", ctx, longText).Return(" Infrastructure\n", nil).Once()
	s := analysis.NewSuggester(classifier, zap.NewNop())

	// Act
	got, ok := s.Suggest(ctx, longText)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, models.CategoryInfrastructure, got)
	classifier.AssertExpectations(t)
}

func TestSuggest_IgnoresUnknownLabels(t *testing.T) {
	for _, label := range []string{"infrastructure", "Category: Academics", "Parking", ""} {
		t.Run(label, func(t *testing.T) {
			ctx := context.Background()
			classifier := new(MockClassifier)
			classifier.On("Classify", ctx, longText).Return(label, nil)
			s := analysis.NewSuggester(classifier, zap.NewNop())

			got, ok := s.Suggest(ctx, longText)

			assert.False(t, ok)
			assert.Equal(t, models.CategoryNone, got)
		})
	}
}

func TestSuggest_SkipsShortDescriptions(t *testing.T) {
	classifier := new(MockClassifier)
	s := analysis.NewSuggester(classifier, zap.NewNop())

	_, ok := s.Suggest(context.Background(), "wifi is  down  again")

	assert.False(t, ok)
	classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestSuggest_SwallowsClassifierErrors(t *testing.T) {
	ctx := context.Background()
	classifier := new(MockClassifier)
	classifier.On("Classify", ctx, longText).Return("", errors.New("quota exceeded"))
	s := analysis.NewSuggester(classifier, zap.NewNop())

	got, ok := s.Suggest(ctx, longText)

	assert.False(t, ok)
	assert.Equal(t, models.CategoryNone, got)
}

func TestSuggest_DisabledWithoutClassifier(t *testing.T) {
	s := analysis.NewSuggester(nil, zap.NewNop())

	assert.False(t, s.Enabled())
	_, ok := s.Suggest(context.Background(), longText)
	assert.False(t, ok)
}
