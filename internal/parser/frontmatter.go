package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// FrontmatterResult contains the parsed frontmatter and remaining content.
type FrontmatterResult struct {
	// Frontmatter contains the raw bytes between the delimiter lines
	Frontmatter []byte
	// Content contains the remaining content after frontmatter
	Content string
	// HasFrontmatter indicates whether frontmatter was found
	HasFrontmatter bool
}

// SplitFrontmatter separates a leading "---" block from the rest of content.
// The opening delimiter must be the first line of the file; trailing blanks
// and a carriage return are tolerated on that line. The block ends at the
// first following line that starts with "---". Without both delimiters the
// whole input is returned as content.
func SplitFrontmatter(content []byte) FrontmatterResult {
	noFrontmatter := FrontmatterResult{Content: string(content)}

	if !bytes.HasPrefix(content, []byte(Delimiter)) {
		return noFrontmatter
	}

	// Rest of the opening line may only hold whitespace.
	nl := bytes.IndexByte(content, '\n')
	if nl == -1 {
		return noFrontmatter
	}
	if len(bytes.TrimSpace(content[len(Delimiter):nl])) != 0 {
		return noFrontmatter
	}
	remaining := content[nl+1:]

	var frontmatter []byte
	var bodyStart int
	if bytes.HasPrefix(remaining, []byte(Delimiter)) {
		// Empty frontmatter case: ---\n---\n
		bodyStart = len(Delimiter)
	} else {
		idx := bytes.Index(remaining, []byte("\n"+Delimiter))
		if idx == -1 {
			return noFrontmatter
		}
		frontmatter = remaining[:idx]
		bodyStart = idx + 1 + len(Delimiter)
	}

	// Normalize Windows line endings inside the block
	frontmatter = bytes.ReplaceAll(frontmatter, []byte("\r\n"), []byte("\n"))
	frontmatter = bytes.TrimRight(frontmatter, "\r")

	// Drop the remainder of the closing delimiter line
	body := remaining[bodyStart:]
	if i := bytes.IndexByte(body, '\n'); i != -1 {
		body = body[i+1:]
	} else {
		body = nil
	}

	return FrontmatterResult{
		Frontmatter:    frontmatter,
		Content:        string(body),
		HasFrontmatter: true,
	}
}

// ParseFrontmatter returns the key-value pairs of the leading frontmatter
// block of text. Text without a block yields an empty, non-nil map.
//
// Lines are split on the first colon and both halves trimmed. Lines without
// a colon, or whose value is empty, are dropped. A repeated key keeps its
// last value.
func ParseFrontmatter(text []byte) map[string]string {
	fields := make(map[string]string)

	result := SplitFrontmatter(text)
	if !result.HasFrontmatter {
		return fields
	}

	for _, line := range strings.Split(string(result.Frontmatter), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		fields[strings.TrimSpace(key)] = value
	}

	return fields
}

// ParseFile reads path and parses its frontmatter.
func ParseFile(path string) (map[string]string, error) {
	// #nosec G304 - path comes from catalog discovery under the repository root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return ParseFrontmatter(data), nil
}
