// Package output persists a rendered document to the first candidate
// path that accepts it. Candidate order is fixed by configuration;
// each candidate is attempted exactly once per run.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Attempt records one failed candidate.
type Attempt struct {
	Path string
	Err  error
}

// ExhaustedError reports that every candidate path failed, naming each
// attempted path and its failure.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	var b strings.Builder
	b.WriteString("all output paths failed:")
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, " %s (%v);", a.Path, a.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Result is a successful resolution. Fallback is true when the written
// path is not the preferred first candidate, so the caller can tell
// the user the primary location was unavailable.
type Result struct {
	Path     string
	Fallback bool
}

// Resolve tries candidates strictly in order: create the parent
// directory, then write the document through write. The first full
// success wins. A failed write leaves no partial file behind. When
// every candidate fails, the returned error is an *ExhaustedError
// listing all attempts.
func Resolve(candidates []string, write func(w io.Writer) error) (Result, error) {
	var attempts []Attempt
	for i, path := range candidates {
		if err := writeTo(path, write); err != nil {
			attempts = append(attempts, Attempt{Path: path, Err: err})
			continue
		}
		return Result{Path: path, Fallback: i > 0}, nil
	}
	return Result{}, &ExhaustedError{Attempts: attempts}
}

func writeTo(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// Candidates returns the fixed candidate list for a document: the
// primary absolute path, then the same file name under an output
// directory next to the running executable.
func Candidates(primary string) []string {
	paths := []string{primary}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "output", filepath.Base(primary)))
	}
	return paths
}
