package roast

import (
	"context"
	"encoding/json"

	"github.com/thomas-vilte/mischief/internal/ai"
	"github.com/thomas-vilte/mischief/internal/logger"
)

// ResponseCache stores parsed results keyed by model and prompt.
type ResponseCache interface {
	Key(parts ...string) string
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, response interface{}) error
}

type Request struct {
	Input    Input
	Severity Severity
	Spanish  bool
}

type Response struct {
	Result Result
	Cached bool
}

type Service struct {
	reviewer ai.CodeReviewer
	cache    ResponseCache
}

// NewService builds a roast service. cache may be nil.
func NewService(reviewer ai.CodeReviewer, cache ResponseCache) *Service {
	return &Service{reviewer: reviewer, cache: cache}
}

func (s *Service) Roast(ctx context.Context, req Request) (Response, error) {
	log := logger.FromContext(ctx)

	prompt, err := BuildPrompt(req.Input, req.Severity, req.Spanish)
	if err != nil {
		return Response{}, err
	}

	var key string
	if s.cache != nil {
		key = s.cache.Key(s.reviewer.ModelName(), prompt)
		if result, ok := s.lookup(ctx, key); ok {
			log.Info("roast served from cache", "key", key)
			return Response{Result: result, Cached: true}, nil
		}
	}

	log.Debug("requesting roast",
		"severity", req.Severity.Name,
		"filename", req.Input.Filename,
		"lines", req.Input.Lines,
		"truncated", req.Input.Truncated)

	text, err := s.reviewer.Review(ctx, prompt)
	if err != nil {
		return Response{}, err
	}

	result := ParseResult(text)
	if s.cache != nil && result.Verdict != FallbackVerdict {
		if err := s.cache.Set(key, result); err != nil {
			log.Warn("could not cache roast", "error", err)
		}
	}

	return Response{Result: result}, nil
}

func (s *Service) lookup(ctx context.Context, key string) (Result, bool) {
	raw, ok, err := s.cache.Get(key)
	if err != nil {
		logger.Warn(ctx, "cache read failed", "error", err)
		return Result{}, false
	}
	if !ok {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil || len(result.Roasts) == 0 {
		return Result{}, false
	}
	return result, true
}
