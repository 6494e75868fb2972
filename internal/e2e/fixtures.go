package e2e

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture provides helpers for creating repository content in E2E tests.
type Fixture struct {
	t       *testing.T
	baseDir string
}

// NewFixture creates a new fixture helper rooted at the given directory.
func NewFixture(t *testing.T, baseDir string) *Fixture {
	t.Helper()
	return &Fixture{
		t:       t,
		baseDir: baseDir,
	}
}

// WriteFile writes content to a file relative to the fixture base directory.
// It creates parent directories as needed.
func (f *Fixture) WriteFile(relPath, content string) string {
	f.t.Helper()
	fullPath := f.Path(relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		f.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}

	return fullPath
}

// WriteSkill writes <domain>/<dir>/SKILL.md with a frontmatter block holding
// name and description. Empty values are left out of the block.
func (f *Fixture) WriteSkill(domain, dir, name, description string) string {
	f.t.Helper()

	content := "---\n"
	if name != "" {
		content += "name: " + name + "\n"
	}
	if description != "" {
		content += "description: " + description + "\n"
	}
	content += "---\n\n# " + dir + "\n"

	return f.WriteFile(filepath.Join(domain, dir, "SKILL.md"), content)
}

// Path returns the full path for a relative path.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.baseDir, filepath.FromSlash(relPath))
}

// Exists returns true if the file or directory exists.
func (f *Fixture) Exists(relPath string) bool {
	f.t.Helper()
	_, err := os.Stat(f.Path(relPath))
	return err == nil
}

// ReadFile reads and returns the content of a file.
func (f *Fixture) ReadFile(relPath string) string {
	f.t.Helper()
	fullPath := f.Path(relPath)

	// #nosec G304 - fullPath is constructed from trusted test fixture base and test-provided path
	data, err := os.ReadFile(fullPath)
	if err != nil {
		f.t.Fatalf("failed to read file %s: %v", fullPath, err)
	}

	return string(data)
}

// Backdate sets the modification time of relPath one hour into the past
// and returns it.
func (f *Fixture) Backdate(relPath string) time.Time {
	f.t.Helper()
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(f.Path(relPath), past, past); err != nil {
		f.t.Fatalf("failed to set times on %s: %v", relPath, err)
	}
	return past
}

// ModTime returns the modification time of relPath.
func (f *Fixture) ModTime(relPath string) time.Time {
	f.t.Helper()
	info, err := os.Stat(f.Path(relPath))
	if err != nil {
		f.t.Fatalf("failed to stat %s: %v", relPath, err)
	}
	return info.ModTime()
}
