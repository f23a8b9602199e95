package ai

import "context"

// CodeReviewer sends a prompt to a model and returns its raw text reply.
type CodeReviewer interface {
	Review(ctx context.Context, prompt string) (string, error)

	// ModelName identifies the model, e.g. "gemini-2.5-flash". It is part of
	// response cache keys.
	ModelName() string
}
