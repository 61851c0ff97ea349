package output

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOK(w io.Writer) error {
	_, err := io.WriteString(w, "content")
	return err
}

func TestResolve_PrimarySucceeds(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "out", "doc.docx")
	fallback := filepath.Join(dir, "fallback", "doc.docx")

	res, err := Resolve([]string{primary, fallback}, writeOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != primary {
		t.Errorf("expected primary path %s, got %s", primary, res.Path)
	}
	if res.Fallback {
		t.Errorf("primary success should not be marked fallback")
	}

	data, err := os.ReadFile(primary)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("unexpected file content: %q", data)
	}
	if _, err := os.Stat(fallback); !os.IsNotExist(err) {
		t.Errorf("fallback should not be written when primary succeeds")
	}
}

func TestResolve_FallbackWhenPrimaryBlocked(t *testing.T) {
	dir := t.TempDir()
	// A plain file where the primary's parent directory should be makes
	// MkdirAll fail.
	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	primary := filepath.Join(blocked, "doc.docx")
	fallback := filepath.Join(dir, "output", "doc.docx")

	res, err := Resolve([]string{primary, fallback}, writeOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != fallback {
		t.Errorf("expected fallback path %s, got %s", fallback, res.Path)
	}
	if !res.Fallback {
		t.Errorf("fallback result should be marked as such")
	}
}

func TestResolve_AllCandidatesFail(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	a := filepath.Join(blocked, "a.docx")
	b := filepath.Join(blocked, "deeper", "b.docx")

	_, err := Resolve([]string{a, b}, writeOK)
	if err == nil {
		t.Fatalf("expected error when all candidates fail")
	}

	var ex *ExhaustedError
	if !errors.As(err, &ex) {
		t.Fatalf("expected *ExhaustedError, got %T", err)
	}
	if len(ex.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(ex.Attempts))
	}
	msg := err.Error()
	if !strings.Contains(msg, a) || !strings.Contains(msg, b) {
		t.Errorf("error should name every attempted path: %s", msg)
	}
}

func TestResolve_FailedWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "doc.docx")
	fallback := filepath.Join(dir, "output", "doc.docx")

	calls := 0
	write := func(w io.Writer) error {
		calls++
		if calls == 1 {
			io.WriteString(w, "partial")
			return errors.New("render failed")
		}
		return writeOK(w)
	}

	res, err := Resolve([]string{primary, fallback}, write)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != fallback {
		t.Errorf("expected fallback after failed write, got %s", res.Path)
	}
	if _, statErr := os.Stat(primary); !os.IsNotExist(statErr) {
		t.Errorf("failed primary write should leave no file behind")
	}
}

func TestCandidates(t *testing.T) {
	paths := Candidates("/mnt/data/report.docx")
	if len(paths) == 0 || paths[0] != "/mnt/data/report.docx" {
		t.Fatalf("first candidate must be the primary path: %v", paths)
	}
	if len(paths) == 2 {
		if filepath.Base(paths[1]) != "report.docx" {
			t.Errorf("fallback should keep the file name: %s", paths[1])
		}
		if filepath.Base(filepath.Dir(paths[1])) != "output" {
			t.Errorf("fallback should live under an output directory: %s", paths[1])
		}
	}
}
