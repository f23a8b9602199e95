package roast

import "github.com/thomas-vilte/mischief/internal/ai"

func BuildPrompt(in Input, sev Severity, spanish bool) (string, error) {
	return ai.RenderPrompt("roast", ai.RoastPromptTemplate, ai.RoastPromptData{
		Filename: in.Filename,
		Persona:  sev.Persona,
		Tone:     sev.Tone,
		Code:     in.Code,
		Spanish:  spanish,
	})
}
