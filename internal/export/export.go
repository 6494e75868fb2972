// Package export writes catalog records in machine-readable formats for the
// list command.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/model"
	"github.com/kumo-ai/kumo-skills-catalog/internal/readme"
)

// Format represents the output format for listed skills.
type Format string

const (
	// FormatJSON lists skills as JSON.
	FormatJSON Format = "json"
	// FormatYAML lists skills as YAML.
	FormatYAML Format = "yaml"
	// FormatMarkdown lists skills as the README table rows.
	FormatMarkdown Format = "markdown"
)

// IsValid returns true if the format is recognized.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMarkdown}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", fmt.Errorf("unsupported format %q (valid: json, yaml, markdown)", s)
	}
	return format, nil
}

// Options configures export behavior.
type Options struct {
	// Format specifies the output format.
	Format Format
	// Domain filters records by domain (empty means all).
	Domain string
}

// Exporter writes records in the configured format.
type Exporter struct {
	opts Options
}

// New creates a new Exporter with the given options.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Export writes records to w in the configured format, keeping their order.
func (e *Exporter) Export(records []model.SkillRecord, w io.Writer) error {
	defer logging.Timer("export")()

	filtered := e.filterByDomain(records)

	logging.Debug("starting export",
		slog.String("format", string(e.opts.Format)),
		logging.Count(len(filtered)),
		logging.Operation("export"),
	)

	switch e.opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(filtered)
	case FormatYAML:
		return e.exportYAML(filtered, w)
	case FormatMarkdown:
		return e.exportMarkdown(filtered, w)
	default:
		return fmt.Errorf("unsupported format: %s", e.opts.Format)
	}
}

// filterByDomain filters records by the configured domain.
func (e *Exporter) filterByDomain(records []model.SkillRecord) []model.SkillRecord {
	filtered := make([]model.SkillRecord, 0, len(records))
	for _, r := range records {
		if e.opts.Domain == "" || r.Domain == e.opts.Domain {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (e *Exporter) exportYAML(records []model.SkillRecord, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}

func (e *Exporter) exportMarkdown(records []model.SkillRecord, w io.Writer) error {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(readme.Row(r))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
