package regex

import "regexp"

var (
	// Commit patterns
	ConventionalCommit = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:\s*(.+)`)
	ConventionalType   = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)$`)
	Placeholder        = regexp.MustCompile(`\{([a-z]+)\}`)

	// AI and JSON parsing
	MarkdownJSONBlock = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")
	JSONString        = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)

	// Calendar dates accepted by alibi --date
	ISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)
