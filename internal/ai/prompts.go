package ai

import (
	"bytes"
	"fmt"
	"text/template"
)

// RoastPromptData holds the parameters of the roast prompt.
type RoastPromptData struct {
	Filename string
	Persona  string
	Tone     string
	Code     string
	Spanish  bool
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const RoastPromptTemplate = `You are reviewing code from "{{if .Filename}}{{.Filename}}{{else}}unknown{{end}}".

{{.Persona}}

Respond with ONLY valid JSON in this exact format:
{
  "roasts": [
    {
      "line": "line number or range",
      "target": "brief description of what you're targeting",
      "roast": "your roast/review comment",
      "suggestion": "one concrete improvement suggestion"
    }
  ],
  "verdict": "one-line overall verdict"
}

Rules:
- Return 3-6 roasts depending on code length and issue density
- Point to specific, real line numbers from the code
- Be technically accurate, every criticism must be valid
- {{.Tone}}
- Suggestions must be genuinely helpful
- The verdict should be memorable
{{- if .Spanish}}
- Write every "target", "roast", "suggestion" and the "verdict" in Spanish (Rioplatense voseo is welcome). Keep the JSON keys in English.
{{- end}}

Here is the code:
` + "```" + `
{{.Code}}
` + "```"
