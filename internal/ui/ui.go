package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/i18n"
)

const cross = "✘"

// Confirm asks question on w and reads one line from r. Answers starting
// with y or s (sí) count as yes; anything else, including EOF, is no.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	_, _ = fmt.Fprint(w, question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "s")
}

// PrintFailure writes a single "✘ msg" line framed by blank lines.
func PrintFailure(w io.Writer, theme Theme, msg string) {
	_, _ = fmt.Fprintf(w, "\n  %s %s\n\n", theme.A(cross), msg)
}

// HandleAppError renders err for humans. AppErrors get their details and
// suggestion; anything else is printed as is. t may be nil.
func HandleAppError(w io.Writer, err error, theme Theme, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintFailure(w, theme, err.Error())
		return
	}

	_, _ = fmt.Fprintf(w, "\n  %s %s\n", theme.A(cross), appErr.Message)

	if appErr.Err != nil {
		details := "Details:"
		if t != nil {
			details = t.GetMessage("ui.details", 0, nil)
		}
		_, _ = fmt.Fprintf(w, "    %s %v\n", Dim.Sprint(details), appErr.Err)
	}
	if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
		_, _ = fmt.Fprintf(w, "    %s\n", Dim.Sprint(stderr))
	}

	if appErr.Suggestion != "" {
		try := "Try:"
		if t != nil {
			try = t.GetMessage("ui.try", 0, nil)
		}
		_, _ = fmt.Fprintln(w)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintf(w, "  %s %s\n", theme.A(try), line)
			} else {
				_, _ = fmt.Fprintf(w, "  %s %s\n", strings.Repeat(" ", len([]rune(try))), strings.TrimLeft(line, " "))
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
