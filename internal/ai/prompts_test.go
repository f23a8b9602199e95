package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	t.Run("Success - Render roast prompt", func(t *testing.T) {
		data := RoastPromptData{
			Filename: "src/index.ts",
			Persona:  "You are an unhinged, brutally funny code reviewer.",
			Tone:     "Be absolutely ruthless and hilarious",
			Code:     "const x = 1",
		}

		result, err := RenderPrompt("roast", RoastPromptTemplate, data)

		require.NoError(t, err)
		assert.Contains(t, result, `You are reviewing code from "src/index.ts".`)
		assert.Contains(t, result, "brutally funny")
		assert.Contains(t, result, "- Be absolutely ruthless and hilarious")
		assert.Contains(t, result, "```\nconst x = 1\n```")
		assert.NotContains(t, result, "Spanish")
	})

	t.Run("Success - Unknown filename and Spanish output", func(t *testing.T) {
		result, err := RenderPrompt("roast", RoastPromptTemplate, RoastPromptData{Code: "x", Spanish: true})

		require.NoError(t, err)
		assert.Contains(t, result, `"unknown"`)
		assert.Contains(t, result, "in Spanish")
	})

	t.Run("Error - Invalid template", func(t *testing.T) {
		_, err := RenderPrompt("bad", "{{.Nope", nil)

		assert.Error(t, err)
	})

	t.Run("Error - Missing field", func(t *testing.T) {
		_, err := RenderPrompt("bad", "{{.Missing}}", RoastPromptData{})

		assert.Error(t, err)
	})
}
