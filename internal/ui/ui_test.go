package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"si\n", true},
		{"  s  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"nope", false},
		{"yep", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer

			got := Confirm(strings.NewReader(tt.input), &out, "Fabricate these commits? [y/n] ")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Fabricate these commits? [y/n] ", out.String())
		})
	}
}

func TestHandleAppError(t *testing.T) {
	theme := NewTheme("roast", HexHonest)

	t.Run("app error with details and suggestion", func(t *testing.T) {
		// Arrange
		var out bytes.Buffer
		err := domainErrors.ErrAPIKeyMissing.WithError(errors.New("env empty"))

		// Act
		HandleAppError(&out, err, theme, nil)

		// Assert
		got := out.String()
		assert.Contains(t, got, "✘ GEMINI_API_KEY not set")
		assert.Contains(t, got, "Details: env empty")
		assert.Contains(t, got, "Try: Get one at: https://aistudio.google.com/apikey")
		assert.Contains(t, got, "     Then: export GEMINI_API_KEY=your_key")
	})

	t.Run("stderr context is shown", func(t *testing.T) {
		var out bytes.Buffer
		err := domainErrors.ErrAddFile.WithContext("stderr", "fatal: pathspec did not match")

		HandleAppError(&out, err, theme, nil)

		assert.Contains(t, out.String(), "fatal: pathspec did not match")
	})

	t.Run("plain error", func(t *testing.T) {
		var out bytes.Buffer

		HandleAppError(&out, errors.New("something broke"), theme, nil)

		assert.Equal(t, "\n  ✘ something broke\n\n", out.String())
	})

	t.Run("nil error prints nothing", func(t *testing.T) {
		var out bytes.Buffer

		HandleAppError(&out, nil, theme, nil)

		assert.Empty(t, out.String())
	})
}
