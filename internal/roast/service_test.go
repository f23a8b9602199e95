package roast

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/mischief/internal/cache"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
)

type MockCodeReviewer struct {
	mock.Mock
}

func (m *MockCodeReviewer) Review(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockCodeReviewer) ModelName() string {
	return "gemini-test"
}

const validReply = `{"roasts":[{"line":"1","target":"main","roast":"empty main, bold","suggestion":"write code"}],"verdict":"minimalist"}`

func testInput() Input {
	return Input{Code: "package main\nfunc main() {}", Filename: "main.go", Lines: 2}
}

func TestService_Roast(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the prompt and parses the reply", func(t *testing.T) {
		// Arrange
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, `"main.go"`) &&
				strings.Contains(p, Savage.Persona) &&
				strings.Contains(p, "func main() {}")
		})).Return(validReply, nil).Once()
		svc := NewService(reviewer, nil)

		// Act
		resp, err := svc.Roast(ctx, Request{Input: testInput(), Severity: Savage})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Cached)
		assert.Equal(t, "minimalist", resp.Result.Verdict)
		reviewer.AssertExpectations(t)
	})

	t.Run("spanish directive", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "in Spanish")
		})).Return(validReply, nil).Once()

		_, err := NewService(reviewer, nil).Roast(ctx, Request{Input: testInput(), Severity: Honest, Spanish: true})

		require.NoError(t, err)
		reviewer.AssertExpectations(t)
	})

	t.Run("reviewer errors pass through", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return("", domainErrors.ErrGeminiQuotaExceeded).Once()

		_, err := NewService(reviewer, nil).Roast(ctx, Request{Input: testInput(), Severity: Honest})

		assert.ErrorIs(t, err, domainErrors.ErrGeminiQuotaExceeded)
	})

	t.Run("malformed reply degrades to fallback", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return("lol no", nil).Once()

		resp, err := NewService(reviewer, nil).Roast(ctx, Request{Input: testInput(), Severity: Honest})

		require.NoError(t, err)
		require.Len(t, resp.Result.Roasts, 1)
		assert.Equal(t, FallbackVerdict, resp.Result.Verdict)
	})
}

func TestService_Roast_Cache(t *testing.T) {
	ctx := context.Background()

	newCache := func(t *testing.T) *cache.Cache {
		c, err := cache.NewCache(t.TempDir(), time.Hour)
		require.NoError(t, err)
		return c
	}

	t.Run("second identical request is served from cache", func(t *testing.T) {
		// Arrange
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return(validReply, nil).Once()
		svc := NewService(reviewer, newCache(t))
		req := Request{Input: testInput(), Severity: Gentle}

		// Act
		first, err1 := svc.Roast(ctx, req)
		second, err2 := svc.Roast(ctx, req)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.False(t, first.Cached)
		assert.True(t, second.Cached)
		assert.Equal(t, first.Result, second.Result)
		reviewer.AssertNumberOfCalls(t, "Review", 1)
	})

	t.Run("different severity misses", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return(validReply, nil).Twice()
		svc := NewService(reviewer, newCache(t))

		_, err := svc.Roast(ctx, Request{Input: testInput(), Severity: Gentle})
		require.NoError(t, err)
		_, err = svc.Roast(ctx, Request{Input: testInput(), Severity: Savage})
		require.NoError(t, err)

		reviewer.AssertNumberOfCalls(t, "Review", 2)
	})

	t.Run("fallback results are not cached", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return("garbage", nil).Twice()
		svc := NewService(reviewer, newCache(t))
		req := Request{Input: testInput(), Severity: Honest}

		_, _ = svc.Roast(ctx, req)
		resp, err := svc.Roast(ctx, req)

		require.NoError(t, err)
		assert.False(t, resp.Cached)
		reviewer.AssertNumberOfCalls(t, "Review", 2)
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		reviewer := new(MockCodeReviewer)
		reviewer.On("Review", ctx, mock.Anything).Return(validReply, nil).Once()
		c := newCache(t)
		svc := NewService(reviewer, c)
		req := Request{Input: testInput(), Severity: Honest}
		prompt, err := BuildPrompt(req.Input, req.Severity, false)
		require.NoError(t, err)
		require.NoError(t, c.Set(c.Key("gemini-test", prompt), json.RawMessage(`{"roasts":"nope"}`)))

		resp, err := svc.Roast(ctx, req)

		require.NoError(t, err)
		assert.False(t, resp.Cached)
		reviewer.AssertExpectations(t)
	})
}
