// Package model defines the catalog types shared by the scanner and the
// README renderer.
package model

import (
	"unicode"
	"unicode/utf8"
)

// SkillRecord is one row of the catalog table, built from a single
// SKILL.md file located at <domain>/<name>/.../SKILL.md.
type SkillRecord struct {
	// Domain is the first path segment below the repository root.
	Domain string `json:"domain" yaml:"domain"`
	// Name comes from the frontmatter name field, falling back to the
	// second path segment.
	Name string `json:"name" yaml:"name"`
	// RelativePath is the slash-separated path of the SKILL.md file
	// relative to the repository root.
	RelativePath string `json:"path" yaml:"path"`
	// Summary is the first sentence of the frontmatter description.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Link returns the markdown link to the definition file.
func (r SkillRecord) Link() string {
	return "[" + r.Name + "](" + r.RelativePath + ")"
}

// FirstSentence returns description up to and including the first period
// that is immediately followed by whitespace. A description without such a
// boundary is returned unchanged. Abbreviations are not special-cased, so
// "Use e.g. this." yields "Use e.g.".
func FirstSentence(description string) string {
	for i, r := range description {
		if r != '.' {
			continue
		}
		next, _ := utf8.DecodeRuneInString(description[i+1:])
		if next != utf8.RuneError && unicode.IsSpace(next) {
			return description[:i+1]
		}
	}
	return description
}
