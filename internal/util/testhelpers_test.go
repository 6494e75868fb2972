//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpha", "one", "SKILL.md")
	content := "---\nname: one\n---\n"

	WriteFile(t, path, content)

	got, err := os.ReadFile(path) //nolint:gosec // G304 - safe in test code using temp directory
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(got) != content {
		t.Errorf("file content = %q, want %q", got, content)
	}
}

func TestAssertHelpers(t *testing.T) {
	AssertNoError(t, nil)
	AssertEqual(t, "README.md", "README.md")
	AssertEqual(t, 2, 2)
}

func TestGoldenFile(t *testing.T) {
	original := UpdateGolden()
	defer SetUpdateGolden(original)

	testdataDir := filepath.Join(t.TempDir(), "testdata")

	SetUpdateGolden(true)
	GoldenFile(t, testdataDir, "table", "| a | [b](a/b/SKILL.md) |  |\n")

	got, err := os.ReadFile(filepath.Join(testdataDir, "table.golden")) //nolint:gosec // G304 - safe in test
	if err != nil {
		t.Fatalf("golden file was not created: %v", err)
	}
	if string(got) != "| a | [b](a/b/SKILL.md) |  |\n" {
		t.Errorf("golden file content = %q", got)
	}

	SetUpdateGolden(false)
	GoldenFile(t, testdataDir, "table", "| a | [b](a/b/SKILL.md) |  |\n")
}
