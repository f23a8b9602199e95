package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeGit           ErrorType = "GIT"
	TypeInput         ErrorType = "INPUT"
	TypeFilesystem    ErrorType = "FILESYSTEM"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// errors derived with the With* builders still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not a git repository", nil).
			WithSuggestion("Initialize a git repository first: git init")

	ErrGetRepoRoot = NewAppError(TypeGit, "Failed to get repository root", nil).
			WithSuggestion("Make sure you are inside a git repository")

	ErrGetHead = NewAppError(TypeGit, "Failed to resolve HEAD", nil)

	ErrAddFile = NewAppError(TypeGit, "Failed to add file to staging", nil).
			WithSuggestion("Check if the file exists and you have write permissions")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrRollback = NewAppError(TypeGit, "Failed to roll back fabricated commits", nil).
			WithSuggestion("Inspect the history with: git log --oneline")

	ErrGitUserNotConfigured = NewAppError(TypeGit, "git user.name not configured", nil).
				WithSuggestion("Set your git username: git config --global user.name \"Your Name\"")

	ErrGitEmailNotConfigured = NewAppError(TypeGit, "git user.email not configured", nil).
					WithSuggestion("Set your git email: git config --global user.email \"your@email.com\"")
)

// Configuration errors
var (
	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "GEMINI_API_KEY not set", nil).
				WithSuggestion("Get one at: https://aistudio.google.com/apikey\nThen: export GEMINI_API_KEY=your_key")

	ErrInvalidTemplates = NewAppError(TypeConfiguration, "Invalid commit template pack", nil).
				WithSuggestion("Check the YAML file: every category needs at least one template")

	ErrInvalidDate = NewAppError(TypeConfiguration, "Invalid date", nil).
			WithSuggestion("Use the YYYY-MM-DD format, e.g. --date 2026-01-24")

	ErrInvalidPolicy = NewAppError(TypeConfiguration, "Invalid failure policy", nil).
				WithSuggestion("Use --on-failure keep or --on-failure rollback")
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeAI, "Gemini API key is invalid", nil).
				WithSuggestion("Get a valid API key at: https://aistudio.google.com/apikey")

	ErrGeminiQuotaExceeded = NewAppError(TypeAI, "Gemini API quota exceeded", nil).
				WithSuggestion("Wait for quota to reset or upgrade your Gemini plan")
)

// Input errors
var (
	ErrClipboardEmpty = NewAppError(TypeInput, "Clipboard is empty or not accessible", nil)

	ErrNoInput = NewAppError(TypeInput, "No code to roast", nil).
			WithSuggestion("Pass a file, pipe input, or use --clipboard")

	ErrIsDirectory = NewAppError(TypeInput, "That's a directory", nil).
			WithSuggestion("Add --yolo if you're brave enough")

	ErrNoCodeFiles = NewAppError(TypeInput, "No code files found in that directory", nil)

	ErrReadInput = NewAppError(TypeInput, "Could not read input", nil)

	ErrUnsafeTarget = NewAppError(TypeInput, "Refusing to yeet outside the current directory", nil).
			WithSuggestion("Name a directory inside the current one, e.g. --target dist")
)

// Filesystem errors
var (
	ErrScanTarget = NewAppError(TypeFilesystem, "Failed to scan target", nil)

	ErrDeleteTarget = NewAppError(TypeFilesystem, "Failed to delete target", nil).
			WithSuggestion("Check that you have write permissions on the parent directory")

	ErrWriteMarker = NewAppError(TypeFilesystem, "Failed to write work file", nil)
)
