package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// GetGenerateConfig returns the generation settings for modelName, asking for
// JSON when responseType is "application/json".
func GetGenerateConfig(modelName string, responseType string, schema *genai.Schema) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.9),
		MaxOutputTokens: int32(4096),
	}

	if responseType == "application/json" {
		config.ResponseMIMEType = "application/json"
		if schema != nil {
			config.ResponseSchema = schema
		}
	}

	if strings.HasPrefix(modelName, "gemini-3") {
		config.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingLevel:   genai.ThinkingLevelLow,
		}
	}

	return config
}

func float32Ptr(f float32) *float32 {
	return &f
}

// formatResponse concatenates the text parts of every candidate, skipping
// thought parts.
func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var out strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			out.WriteString(part.Text)
		}
	}
	return out.String()
}

func roastSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"roasts", "verdict"},
		Properties: map[string]*genai.Schema{
			"roasts": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"line", "target", "roast", "suggestion"},
					Properties: map[string]*genai.Schema{
						"line":       str("line number or range"),
						"target":     str("what the roast is aimed at"),
						"roast":      str("the review comment"),
						"suggestion": str("one concrete improvement"),
					},
				},
			},
			"verdict": str("one-line overall verdict"),
		},
	}
}
