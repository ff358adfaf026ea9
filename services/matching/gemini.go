package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Sampling configuration for the matching integration. Fixed constants, not
// caller-tunable.
const (
	geminiModelName = "models/gemini-2.0-flash"

	geminiTemperature     = 1.0
	geminiTopP            = 0.95
	geminiTopK            = 40
	geminiMaxOutputTokens = 8192
)

// GeminiClient implements ReasoningClient against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient builds a Gemini-backed reasoning client. The caller owns
// the client and must Close it on shutdown.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModelName)
	model.SetTemperature(geminiTemperature)
	model.SetTopP(geminiTopP)
	model.SetTopK(geminiTopK)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)
	model.ResponseMIMEType = "text/plain"

	return &GeminiClient{client: client, model: model}, nil
}

// Recommend streams a completion for the prompt and concatenates the text
// fragments in arrival order. Any transport or stream failure surfaces as a
// ReasoningError; the call is never retried here.
func (g *GeminiClient) Recommend(ctx context.Context, prompt string) (string, error) {
	iter := g.model.GenerateContentStream(ctx, genai.Text(prompt))

	var sb strings.Builder
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", &ReasoningError{Err: err}
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
				}
			}
		}
	}
	return sb.String(), nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
