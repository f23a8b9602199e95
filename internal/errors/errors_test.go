package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrCreateCommit.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeGit {
		t.Errorf("Expected type %s, got %s", TypeGit, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrAddFile.WithContext("file", "work-1.txt").WithContext("stderr", "file not found")

	if appErr.Context["file"] != "work-1.txt" {
		t.Errorf("Expected file context 'work-1.txt', got %v", appErr.Context["file"])
	}

	if appErr.Context["stderr"] != "file not found" {
		t.Errorf("Expected stderr context 'file not found', got %v", appErr.Context["stderr"])
	}

	if ErrAddFile.Context != nil {
		t.Error("Original error should not have context")
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "Simple error without underlying error",
			err:      ErrNotInGitRepo,
			contains: []string{"GIT", "Not a git repository"},
		},
		{
			name:     "Error with underlying error",
			err:      ErrCreateCommit.WithError(errors.New("exit status 1")),
			contains: []string{"GIT", "Failed to create commit", "exit status 1"},
		},
		{
			name: "Error with context including stderr",
			err: ErrAddFile.WithError(errors.New("exit status 128")).
				WithContext("file", "work-1.txt").
				WithContext("stderr", "did not match any files"),
			contains: []string{"GIT", "Failed to add file to staging", "exit status 128", "did not match any files"},
		},
		{
			name:     "Configuration error",
			err:      ErrAPIKeyMissing,
			contains: []string{"CONFIGURATION", "GEMINI_API_KEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrCreateCommit.WithError(baseErr)

	if appErr.Unwrap() != baseErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", baseErr, appErr.Unwrap())
	}

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should work with AppError")
	}
}

func TestAppError_IsSentinel(t *testing.T) {
	t.Run("derived error matches its sentinel", func(t *testing.T) {
		derived := ErrDeleteTarget.WithError(errors.New("permission denied")).WithContext("path", "/tmp/x")

		if !errors.Is(derived, ErrDeleteTarget) {
			t.Error("derived error should match ErrDeleteTarget")
		}
		if errors.Is(derived, ErrScanTarget) {
			t.Error("derived error should not match ErrScanTarget")
		}
	})

	t.Run("wrapped error matches through fmt.Errorf", func(t *testing.T) {
		wrapped := fmt.Errorf("step 3: %w", ErrCreateCommit.WithError(errors.New("boom")))

		var appErr *AppError
		if !errors.As(wrapped, &appErr) {
			t.Fatal("errors.As should find the AppError")
		}
		if !errors.Is(wrapped, ErrCreateCommit) {
			t.Error("wrapped error should match ErrCreateCommit")
		}
	})
}
