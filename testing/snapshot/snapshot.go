// Package snapshot provides golden file testing for rendered terminal frames.
// Frames are compared as plain text, one terminal row per line.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden files
const GoldenDir = "testdata/golden"

// UpdateEnv rewrites golden files instead of comparing when set to 1.
const UpdateEnv = "UPDATE_GOLDEN"

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap compares rendered frames against golden files.
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnv) == "1",
	}
}

// WithDir sets a custom golden file directory
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares a frame against the golden file name.golden.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with %s=1 to create it.\nActual frame:\n%s", goldenPath, UpdateEnv, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != normalized {
		s.t.Errorf("Frame mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with %s=1 to update.",
			name, string(expected), normalized, UpdateEnv)
	}
}

// AssertContains checks that the frame contains substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Frame does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the frame does not contain substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Frame unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertRow checks that row i of the frame contains substr.
func (s *Snap) AssertRow(actual string, i int, substr string) {
	s.t.Helper()
	row, ok := Row(actual, i)
	if !ok {
		s.t.Errorf("Frame has no row %d (%d rows)", i, Lines(actual))
		return
	}
	if !strings.Contains(row, substr) {
		s.t.Errorf("Row %d does not contain %q: %q", i, substr, row)
	}
}

// normalizeOutput strips escape codes, line endings and trailing blanks.
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = csiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the number of rows in the frame.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Row returns row i of the frame without escape codes.
func Row(s string, i int) (string, bool) {
	rows := strings.Split(StripANSI(s), "\n")
	if i < 0 || i >= len(rows) {
		return "", false
	}
	return rows[i], true
}

// FindRow returns the index of the first row containing substr, or -1.
func FindRow(s, substr string) int {
	for i, row := range strings.Split(StripANSI(s), "\n") {
		if strings.Contains(row, substr) {
			return i
		}
	}
	return -1
}

// Width returns the widest row of the frame in terminal cells.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		maxWidth = max(maxWidth, runewidth.StringWidth(line))
	}
	return maxWidth
}
