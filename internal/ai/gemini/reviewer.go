package gemini

import (
	"context"
	"strings"

	"github.com/thomas-vilte/mischief/internal/ai"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/logger"
	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, model, prompt string) (*genai.GenerateContentResponse, error)

// GeminiReviewer sends roast prompts to the Gemini API.
type GeminiReviewer struct {
	model      string
	generateFn generateFunc
}

var _ ai.CodeReviewer = (*GeminiReviewer)(nil)

func NewGeminiReviewer(ctx context.Context, apiKey, model string) (*GeminiReviewer, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		if isAuthError(err) {
			return nil, domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
		return nil, domainErrors.NewAppError(domainErrors.TypeAI, "error creating AI client", err)
	}

	return &GeminiReviewer{
		model: model,
		generateFn: func(ctx context.Context, model, prompt string) (*genai.GenerateContentResponse, error) {
			return client.Models.GenerateContent(ctx, model, genai.Text(prompt), GetGenerateConfig(model, "application/json", roastSchema()))
		},
	}, nil
}

func (r *GeminiReviewer) ModelName() string {
	return r.model
}

func (r *GeminiReviewer) Review(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("calling gemini", "model", r.model, "prompt_length", len(prompt))

	resp, err := r.generateFn(ctx, r.model, prompt)
	if err != nil {
		log.Error("gemini API call failed", "error", err, "model", r.model)
		return "", classifyError(err)
	}

	text := formatResponse(resp)
	if resp != nil && resp.UsageMetadata != nil {
		log.Info("gemini responded",
			"model", r.model,
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}
	if strings.TrimSpace(text) == "" {
		return "", domainErrors.ErrAIGeneration.WithContext("model", r.model)
	}
	return text, nil
}

func classifyError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource exhausted"),
		strings.Contains(msg, "resource_exhausted"):
		return domainErrors.ErrGeminiQuotaExceeded.WithError(err)
	case isAuthError(err):
		return domainErrors.ErrGeminiAPIKeyInvalid.WithError(err)
	default:
		return domainErrors.ErrAIGeneration.WithError(err)
	}
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "permission_denied")
}
