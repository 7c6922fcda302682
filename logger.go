package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Logger provides structured logging with GitHub Actions workflow command support.
type Logger struct {
	w       io.Writer
	stdout  io.Writer
	actions bool

	// outputFS and outputFile locate GITHUB_OUTPUT; outputFS is nil when GITHUB_OUTPUT is unset.
	outputFS   billy.Filesystem
	outputFile string
}

// NewLogger creates a logger that writes to w. If running in GitHub Actions
// (detected via GITHUB_ACTIONS env var), it emits workflow commands for grouping, masking and
// annotations. Log lines move to stdout only when GITHUB_OUTPUT is set, since otherwise stdout
// carries the value passed to Output.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		w:       w,
		stdout:  os.Stdout,
		actions: os.Getenv("GITHUB_ACTIONS") == "true",
	}

	if p := os.Getenv("GITHUB_OUTPUT"); p != "" {
		l.outputFS = osfs.New(filepath.Dir(p))
		l.outputFile = filepath.Base(p)
		if l.actions {
			l.w = os.Stdout
		}
	}

	return l
}

// Printf writes a formatted message to the log.
func (l *Logger) Printf(f string, args ...any) {
	fmt.Fprintf(l.w, f, args...)
}

// Group starts a collapsible group in GitHub Actions logs.
// Returns a function that must be called to end the group.
// Usage:
//
//	end := logger.Group("Token sources")
//	defer end()
func (l *Logger) Group(title string) func() {
	if l.actions {
		fmt.Fprintf(l.w, "::group::%s\n", title)
		return func() { fmt.Fprintln(l.w, "::endgroup::") }
	}
	fmt.Fprintf(l.w, "%s\n", title)
	return func() {}
}

// Mask registers value as a secret in GitHub Actions so it is redacted from all later log output.
// Outside Actions it does nothing.
func (l *Logger) Mask(value string) {
	if l.actions && value != "" {
		fmt.Fprintf(l.w, "::add-mask::%s\n", value)
	}
}

// Notice emits an informational annotation in GitHub Actions,
// or a regular log message otherwise.
func (l *Logger) Notice(msg string) {
	if l.actions {
		fmt.Fprintf(l.w, "::notice::%s\n", msg)
	} else {
		fmt.Fprintf(l.w, "%s\n", msg)
	}
}

// Noticef emits a formatted notice.
func (l *Logger) Noticef(f string, args ...any) {
	l.Notice(fmt.Sprintf(f, args...))
}

// Warning emits a warning annotation in GitHub Actions,
// or a prefixed log message otherwise.
func (l *Logger) Warning(msg string) {
	if l.actions {
		fmt.Fprintf(l.w, "::warning::%s\n", msg)
	} else {
		fmt.Fprintf(l.w, "warning: %s\n", msg)
	}
}

// Warningf emits a formatted warning.
func (l *Logger) Warningf(f string, args ...any) {
	l.Warning(fmt.Sprintf(f, args...))
}

// Error emits an error annotation in GitHub Actions,
// or a prefixed log message otherwise.
func (l *Logger) Error(msg string) {
	if l.actions {
		fmt.Fprintf(l.w, "::error::%s\n", msg)
	} else {
		fmt.Fprintf(l.w, "error: %s\n", msg)
	}
}

// Errorf emits a formatted error.
func (l *Logger) Errorf(f string, args ...any) {
	l.Error(fmt.Sprintf(f, args...))
}

// Output writes a value that should be captured by the caller.
// When GITHUB_OUTPUT is set, the value is appended there under name. Otherwise, it prints to stdout.
func (l *Logger) Output(name, value string) error {
	if l.outputFS != nil {
		f, err := l.outputFS.OpenFile(l.outputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("open GITHUB_OUTPUT: %w", err)
		}
		defer f.Close()

		// Use heredoc syntax for multiline-safe output
		delim := randomDelimiter()
		_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delim, value, delim)
		return err
	}

	_, err := fmt.Fprintln(l.stdout, value)
	return err
}

func randomDelimiter() string {
	return "delim_" + rand.Text()
}
