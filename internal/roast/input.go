package roast

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
)

const TruncationMarker = "\n// ... (truncated)"

var codeExtensions = map[string]bool{
	".js": true, ".ts": true, ".jsx": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".py": true, ".rb": true, ".go": true, ".rs": true, ".java": true, ".c": true,
	".cpp": true, ".h": true, ".cs": true, ".php": true, ".swift": true, ".kt": true,
	".vue": true, ".svelte": true, ".css": true, ".scss": true, ".html": true,
	".sql": true, ".sh": true,
}

var skippedDirs = map[string]bool{
	"node_modules":  true,
	".git":          true,
	".next":         true,
	"dist":          true,
	"build":         true,
	".cache":        true,
	"coverage":      true,
	".turbo":        true,
	".parcel-cache": true,
	"__pycache__":   true,
}

// Input is the code to review and where it came from.
type Input struct {
	Code      string
	Filename  string
	Lines     int
	Files     int
	Truncated bool
}

// Options selects the input source.
type Options struct {
	Path      string
	Clipboard bool
	Yolo      bool
}

// SourceFile is one file collected from a directory.
type SourceFile struct {
	Path    string
	Content string
}

// InputReader resolves Options into an Input. The source priority is
// clipboard, path, then stdin when it is not a terminal.
type InputReader struct {
	Cwd       string
	Stdin     io.Reader
	MaxChars  int
	MaxFiles  int
	clipboard func() (string, error)
	isTTY     func() bool
}

func NewInputReader(stdin io.Reader, cwd string, maxChars, maxFiles int) *InputReader {
	return &InputReader{
		Cwd:       cwd,
		Stdin:     stdin,
		MaxChars:  maxChars,
		MaxFiles:  maxFiles,
		clipboard: clipboard.ReadAll,
		isTTY:     func() bool { return isTerminal(stdin) },
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *InputReader) Read(opts Options) (Input, error) {
	var (
		code, filename string
		files          int
		err            error
	)

	switch {
	case opts.Clipboard:
		code, err = r.readClipboard()
		filename = "clipboard"
	case opts.Path != "":
		code, filename, files, err = r.readPath(opts.Path, opts.Yolo)
	default:
		code, err = r.readStdin()
		filename = "stdin"
	}
	if err != nil {
		return Input{}, err
	}

	code, truncated := Truncate(code, r.MaxChars)
	return Input{
		Code:      code,
		Filename:  filename,
		Lines:     LineCount(code),
		Files:     files,
		Truncated: truncated,
	}, nil
}

func (r *InputReader) readClipboard() (string, error) {
	text, err := r.clipboard()
	if err != nil {
		return "", domainErrors.ErrClipboardEmpty.WithError(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domainErrors.ErrClipboardEmpty
	}
	return text, nil
}

func (r *InputReader) readStdin() (string, error) {
	if r.Stdin == nil || r.isTTY() {
		return "", domainErrors.ErrNoInput
	}
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", domainErrors.ErrReadInput.WithError(err).WithContext("path", "stdin")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", domainErrors.ErrNoInput
	}
	return string(data), nil
}

func (r *InputReader) readPath(path string, yolo bool) (string, string, int, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.Cwd, path)
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", "", 0, domainErrors.ErrReadInput.WithError(err).WithContext("path", path)
	}

	if info.IsDir() {
		if !yolo {
			return "", "", 0, domainErrors.ErrIsDirectory.WithContext("path", path)
		}
		files, err := ReadDirectory(full, r.MaxFiles)
		if err != nil {
			return "", "", 0, domainErrors.ErrReadInput.WithError(err).WithContext("path", path)
		}
		if len(files) == 0 {
			return "", "", 0, domainErrors.ErrNoCodeFiles.WithContext("path", path)
		}
		parts := make([]string, len(files))
		for i, f := range files {
			parts[i] = fmt.Sprintf("// === %s ===\n%s", f.Path, f.Content)
		}
		name := fmt.Sprintf("%s/ (%d files)", filepath.Base(filepath.Clean(full)), len(files))
		return strings.Join(parts, "\n\n"), name, len(files), nil
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", "", 0, domainErrors.ErrReadInput.WithError(err).WithContext("path", path)
	}

	name, err := filepath.Rel(r.Cwd, full)
	if err != nil || name == "" || name == "." {
		name = filepath.Base(full)
	}
	return string(data), name, 0, nil
}

// ReadDirectory collects up to maxFiles code files below dir in lexical walk
// order, skipping dependency and build directories and unreadable files.
func ReadDirectory(dir string, maxFiles int) ([]SourceFile, error) {
	var files []SourceFile

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if len(files) >= maxFiles {
			return fs.SkipAll
		}
		if d.IsDir() {
			if path != dir && skippedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !IsCodeFile(d.Name()) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = d.Name()
		}
		files = append(files, SourceFile{Path: filepath.ToSlash(rel), Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func IsCodeFile(name string) bool {
	return codeExtensions[filepath.Ext(name)]
}

// Truncate cuts code to maxChars runes and appends TruncationMarker. A
// non-positive maxChars disables truncation.
func Truncate(code string, maxChars int) (string, bool) {
	if maxChars <= 0 || utf8.RuneCountInString(code) <= maxChars {
		return code, false
	}
	runes := []rune(code)
	return string(runes[:maxChars]) + TruncationMarker, true
}

func LineCount(code string) int {
	return strings.Count(code, "\n") + 1
}
