package config

import "strings"

const (
	LangEN = "en"
	LangES = "es"
)

// NormalizeLanguage maps values such as "es_AR.UTF-8" or "EN" to a supported
// language code, falling back to English.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	switch lang {
	case LangES:
		return LangES
	default:
		return LangEN
	}
}
