package analysis

import (
	"complaintbox/backend/internal/config"
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const promptTemplate = "Based on the following complaint, categorize it into one of these exact categories: Infrastructure, Academics, Facilities, Other. Respond with only the category name.\n\nComplaint: %q"

// GeminiClassifier asks a Gemini model for a category label.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier creates a classifier for the Gemini API.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = config.SuggestionModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClassifier{client: client, model: model}, nil
}

// Classify sends the description to the model and returns its raw answer.
func (g *GeminiClassifier) Classify(ctx context.Context, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.SuggestionTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(promptTemplate, description)), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}

// Name returns the classifier name for logs.
func (g *GeminiClassifier) Name() string {
	return fmt.Sprintf("genai:%s", g.model)
}
