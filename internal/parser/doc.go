// Package parser extracts the key-value frontmatter header from skill
// definition files.
//
// The header is a block delimited by "---" lines at the very start of the
// file. Each line is split on its first colon; no YAML engine is involved,
// so values containing colons, quotes or brackets are kept verbatim.
package parser
