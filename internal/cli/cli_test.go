package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/util"
)

const kumoHead = "# Kumo Skills Catalog\n\n" +
	"Reusable [agentskills.io](https://agentskills.io) skills for Claude Code and Codex agents working with Kumo infrastructure.\n\n" +
	"| Domain | Skill | Description |\n" +
	"|--------|-------|-------------|\n"

// runApp runs the CLI with stdout captured in a buffer.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := New()
	app.Writer = &buf
	app.ErrWriter = io.Discard

	err := app.Run(context.Background(), append([]string{"skillcatalog", "--no-color"}, args...))
	return buf.String(), err
}

// exampleCatalog writes the two-skill example tree and returns its root.
func exampleCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	util.WriteFile(t, filepath.Join(root, "alpha", "one", "SKILL.md"),
		"---\nname: One Skill\ndescription: Does one thing. It is simple.\n---\n\n# One\n")
	util.WriteFile(t, filepath.Join(root, "beta", "two", "SKILL.md"),
		"# Two\n\nNo frontmatter here.\n")
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // G304 - safe in test code using temp directory
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	root := exampleCatalog(t)

	output, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "README.md updated.\n")

	want := kumoHead +
		"| alpha | [One Skill](alpha/one/SKILL.md) | Does one thing. |\n" +
		"| beta | [two](beta/two/SKILL.md) |  |\n"
	util.AssertEqual(t, readFile(t, filepath.Join(root, "README.md")), want)
}

func TestGenerate_Idempotent(t *testing.T) {
	root := exampleCatalog(t)
	readmePath := filepath.Join(root, "README.md")

	_, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	first := readFile(t, readmePath)

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	util.AssertNoError(t, os.Chtimes(readmePath, past, past))

	output, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "README.md is already up to date.\n")
	util.AssertEqual(t, readFile(t, readmePath), first)

	info, err := os.Stat(readmePath)
	util.AssertNoError(t, err)
	if !info.ModTime().Equal(past) {
		t.Errorf("README was rewritten: mtime %v, want %v", info.ModTime(), past)
	}
}

func TestGenerate_RegeneratesAfterChange(t *testing.T) {
	root := exampleCatalog(t)

	_, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)

	util.WriteFile(t, filepath.Join(root, "beta", "two", "SKILL.md"),
		"---\ndescription: Now documented. Really.\n---\n")

	output, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "README.md updated.\n")

	if !strings.Contains(readFile(t, filepath.Join(root, "README.md")), "| beta | [two](beta/two/SKILL.md) | Now documented. |\n") {
		t.Error("README does not contain the updated row")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	files := map[string]string{
		"gamma/three/SKILL.md": "---\nname: Three\n---\n",
		"alpha/one/SKILL.md":   "---\nname: One\n---\n",
		"beta/two/SKILL.md":    "---\nname: Two\n---\n",
	}
	order := [][]string{
		{"gamma/three/SKILL.md", "alpha/one/SKILL.md", "beta/two/SKILL.md"},
		{"beta/two/SKILL.md", "gamma/three/SKILL.md", "alpha/one/SKILL.md"},
	}

	var outputs []string
	for _, rels := range order {
		root := t.TempDir()
		for _, rel := range rels {
			util.WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), files[rel])
		}
		_, err := runApp(t, "--root", root)
		util.AssertNoError(t, err)
		outputs = append(outputs, readFile(t, filepath.Join(root, "README.md")))
	}

	util.AssertEqual(t, outputs[0], outputs[1])
}

func TestGenerate_ShallowFilesExcluded(t *testing.T) {
	root := exampleCatalog(t)
	util.WriteFile(t, filepath.Join(root, "SKILL.md"), "---\nname: Root Skill\n---\n")
	util.WriteFile(t, filepath.Join(root, "alpha", "SKILL.md"), "---\nname: Domain Skill\n---\n")

	_, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)

	got := readFile(t, filepath.Join(root, "README.md"))
	if strings.Contains(got, "Root Skill") || strings.Contains(got, "Domain Skill") {
		t.Errorf("shallow skill files should not produce rows:\n%s", got)
	}
	if strings.Count(got, "\n| ") != 3 {
		t.Errorf("expected header separator plus two rows:\n%s", got)
	}
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	root := t.TempDir()

	output, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "README.md updated.\n")
	util.AssertEqual(t, readFile(t, filepath.Join(root, "README.md")), kumoHead+"\n")
}

func TestGenerate_ConfigFile(t *testing.T) {
	root := exampleCatalog(t)
	util.WriteFile(t, filepath.Join(root, ".skillcatalog.yaml"),
		"output: docs/CATALOG.md\ntitle: Platform Skills\nintro: \"\"\n")
	util.AssertNoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o750))

	output, err := runApp(t, "--root", root)
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "CATALOG.md updated.\n")

	got := readFile(t, filepath.Join(root, "docs", "CATALOG.md"))
	if !strings.HasPrefix(got, "# Platform Skills\n\n| Domain | Skill | Description |\n") {
		t.Errorf("unexpected document head:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(root, "README.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("README.md should not be created when output is configured, stat err = %v", err)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := map[string]struct {
		setup func(t *testing.T) string
	}{
		"missing root": {
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope")
			},
		},
		"invalid config": {
			setup: func(t *testing.T) string {
				root := exampleCatalog(t)
				util.WriteFile(t, filepath.Join(root, ".skillcatalog.yaml"), "title: [broken\n")
				return root
			},
		},
		"output directory missing": {
			setup: func(t *testing.T) string {
				root := exampleCatalog(t)
				util.WriteFile(t, filepath.Join(root, ".skillcatalog.yaml"), "output: missing/README.md\n")
				return root
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tt.setup(t)
			output, err := runApp(t, "--root", root)
			if err == nil {
				t.Fatal("expected error")
			}
			if output != "" {
				t.Errorf("expected no status line on failure, got %q", output)
			}
		})
	}
}

func TestGenerate_CheckMode(t *testing.T) {
	root := exampleCatalog(t)
	readmePath := filepath.Join(root, "README.md")

	output, err := runApp(t, "--root", root, "--check")
	if !errors.Is(err, ErrOutOfDate) {
		t.Fatalf("expected ErrOutOfDate, got %v", err)
	}
	util.AssertEqual(t, output, "README.md is out of date.\n")
	if _, statErr := os.Stat(readmePath); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("check mode must not write the README, stat err = %v", statErr)
	}

	_, err = runApp(t, "--root", root)
	util.AssertNoError(t, err)

	output, err = runApp(t, "--root", root, "--check")
	util.AssertNoError(t, err)
	util.AssertEqual(t, output, "README.md is already up to date.\n")
}

func TestListCommand(t *testing.T) {
	root := exampleCatalog(t)

	tests := map[string]struct {
		args       []string
		wantErr    bool
		wantOutput []string
	}{
		"default markdown": {
			args: []string{"--root", root, "list"},
			wantOutput: []string{
				"| alpha | [One Skill](alpha/one/SKILL.md) | Does one thing. |",
				"| beta | [two](beta/two/SKILL.md) |  |",
			},
		},
		"json": {
			args:       []string{"--root", root, "list", "--format", "json"},
			wantOutput: []string{`"path": "alpha/one/SKILL.md"`, `"name": "two"`},
		},
		"yaml with domain filter": {
			args:       []string{"--root", root, "list", "-f", "yaml", "--domain", "beta"},
			wantOutput: []string{"domain: beta", "path: beta/two/SKILL.md"},
		},
		"invalid format": {
			args:    []string{"--root", root, "list", "--format", "xml"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output, err := runApp(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}

	if _, err := os.Stat(filepath.Join(root, "README.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("list must not write the README, stat err = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := runApp(t, "version")
	util.AssertNoError(t, err)

	for _, want := range []string{"skillcatalog version", "commit:", "built:", "go:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %q", want, output)
		}
	}
}

func TestConfigureLogging(t *testing.T) {
	tests := map[string]struct {
		args      []string
		wantInfo  bool
		wantDebug bool
	}{
		"no flags logs warnings only": {
			args: []string{"version"},
		},
		"verbose flag enables info level": {
			args:     []string{"--verbose", "version"},
			wantInfo: true,
		},
		"debug flag enables debug level": {
			args:      []string{"--debug", "version"},
			wantInfo:  true,
			wantDebug: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logging.SetDefault(logging.New(logging.DefaultOptions()))

			_, err := runApp(t, tt.args...)
			util.AssertNoError(t, err)

			logger := slog.Default()
			ctx := context.Background()
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}
