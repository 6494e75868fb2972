// Package readme renders the catalog table and writes it to the top-level
// README only when its content changes.
package readme

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/model"
)

// Header holds the static text placed above the table rows.
type Header struct {
	// Title is rendered as the level-one heading.
	Title string
	// Intro is the paragraph between the title and the table.
	Intro string
}

// tableHead is the column header and separator row.
const tableHead = "| Domain | Skill | Description |\n|--------|-------|-------------|\n"

// Renderer assembles the README document.
type Renderer struct {
	header Header
}

// NewRenderer creates a Renderer for the given header.
func NewRenderer(header Header) *Renderer {
	return &Renderer{header: header}
}

// Row formats one record as a markdown table row.
func Row(r model.SkillRecord) string {
	return "| " + r.Domain + " | " + r.Link() + " | " + r.Summary + " |"
}

// Render returns the complete document: header, then one row per record in
// the order given, then a single trailing newline.
func (r *Renderer) Render(records []model.SkillRecord) string {
	var sb strings.Builder

	sb.WriteString(r.Head())

	rows := make([]string, len(records))
	for i, record := range records {
		rows[i] = Row(record)
	}
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteString("\n")

	return sb.String()
}

// Head returns the static text that precedes the rows.
func (r *Renderer) Head() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.header.Title))
	if r.header.Intro != "" {
		sb.WriteString(r.header.Intro)
		sb.WriteString("\n\n")
	}
	sb.WriteString(tableHead)
	return sb.String()
}

// Result reports what WriteIfChanged did.
type Result int

const (
	// UpToDate means the file already held the rendered content.
	UpToDate Result = iota
	// Updated means the file was created or overwritten.
	Updated
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case UpToDate:
		return "up-to-date"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// Compare reports whether the file at path already holds content. A missing
// file is reported as out of date; any other read error is returned.
func Compare(path, content string) (Result, error) {
	// #nosec G304 - path is the configured README below the repository root
	existing, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Updated, nil
		}
		return UpToDate, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if bytes.Equal(existing, []byte(content)) {
		return UpToDate, nil
	}
	return Updated, nil
}

// WriteIfChanged writes content to path unless the file already holds it
// byte for byte. Leaving an unchanged file alone keeps its modification time
// and avoids empty version-control diffs.
func WriteIfChanged(path, content string) (Result, error) {
	defer logging.Timer("write readme")()

	result, err := Compare(path, content)
	if err != nil {
		return result, err
	}
	if result == UpToDate {
		logging.Debug("readme unchanged", logging.Path(path))
		return UpToDate, nil
	}

	// #nosec G306 - README is a public repository document
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return result, fmt.Errorf("failed to write %q: %w", path, err)
	}

	logging.Info("readme written", logging.Path(path), logging.Operation("write"))
	return Updated, nil
}
