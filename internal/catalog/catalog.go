// Package catalog discovers skill definition files under a repository root
// and turns them into table records.
package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/model"
	"github.com/kumo-ai/kumo-skills-catalog/internal/parser"
	"github.com/kumo-ai/kumo-skills-catalog/internal/util"
)

// DefaultSkillFile is the file name that marks a skill definition.
const DefaultSkillFile = "SKILL.md"

// minSegments is domain + name + file.
const minSegments = 3

// Scanner finds skill definition files below Root.
type Scanner struct {
	// Root is the repository root directory.
	Root string
	// SkillFile is the exact file name to look for. Defaults to SKILL.md.
	SkillFile string
}

// New creates a Scanner for root that looks for skillFile.
func New(root, skillFile string) *Scanner {
	if skillFile == "" {
		skillFile = DefaultSkillFile
	}
	return &Scanner{Root: root, SkillFile: skillFile}
}

// Discover returns the slash-separated paths, relative to Root, of every
// file named SkillFile in the tree. Paths are sorted by their string value
// so the result does not depend on directory iteration order. An empty tree
// yields an empty slice.
func (s *Scanner) Discover() ([]string, error) {
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %q: %w", s.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", s.Root)
	}

	pattern := "**/" + escapeMeta(s.SkillFile)
	paths := []string{}
	err = doublestar.GlobWalk(os.DirFS(s.Root), pattern, func(p string, _ fs.DirEntry) error {
		paths = append(paths, p)
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", s.Root, err)
	}

	slices.Sort(paths)

	logging.Debug("discovered skill files",
		logging.Path(s.Root),
		logging.Count(len(paths)),
		logging.Operation("discover"),
	)

	return paths, nil
}

// Records discovers and extracts every skill below Root, in discovery order.
func (s *Scanner) Records() ([]model.SkillRecord, error) {
	paths, err := s.Discover()
	if err != nil {
		return nil, err
	}

	records := make([]model.SkillRecord, 0, len(paths))
	for _, rel := range paths {
		record, ok, err := s.Extract(rel)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Extract builds the record for the definition file at rel. The boolean is
// false when rel has no domain and name directory above it; such files are
// not part of the catalog.
func (s *Scanner) Extract(rel string) (model.SkillRecord, bool, error) {
	segments := util.Segments(rel)
	if len(segments) < minSegments {
		logging.Debug("skipping shallow skill file", logging.Path(rel))
		return model.SkillRecord{}, false, nil
	}

	fields, err := parser.ParseFile(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil {
		return model.SkillRecord{}, false, err
	}

	name, ok := fields["name"]
	if !ok {
		name = segments[1]
	}

	record := model.SkillRecord{
		Domain:       segments[0],
		Name:         name,
		RelativePath: rel,
		Summary:      model.FirstSentence(fields["description"]),
	}

	logging.Debug("extracted skill",
		logging.Skill(record.Name),
		logging.Path(rel),
		logging.Domain(record.Domain),
		slog.Bool("frontmatter", len(fields) > 0),
	)

	return record, true, nil
}

// escapeMeta quotes glob metacharacters so name matches literally.
func escapeMeta(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`*?[]{}\`, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
