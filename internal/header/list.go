package header

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/typesheader/internal/core"
)

type cursor struct {
	lines []string
	pos   int
}

func newCursor(src string) *cursor {
	return &cursor{lines: strings.Split(src, "\n")}
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

func (c *cursor) next() (string, bool) {
	line, ok := c.peek()
	if ok {
		c.pos++
	}
	return line, ok
}

func (c *cursor) skipBlank() {
	for c.pos < len(c.lines) && strings.TrimSpace(c.lines[c.pos]) == "" {
		c.pos++
	}
}

// entry is one comma-separated list item and the physical line it came from.
type entry struct {
	text string
	line string
}

// listState tracks the column at which the first entry of a list starts.
// Continuation lines must start their first entry at the same column.
type listState struct {
	column int
}

// continues reports whether line is "//" followed by blanks up to column and
// a non-blank character at column.
func (s listState) continues(line string) bool {
	if !strings.HasPrefix(line, "//") || len(line) <= s.column {
		return false
	}
	if strings.Trim(line[2:s.column], " \t") != "" {
		return false
	}
	ch := line[s.column]
	return ch != ' ' && ch != '\t'
}

// parseList reads a "// <label> a, b," line and any aligned continuation lines.
func (p *Parser) parseList(c *cursor, expected, label string) ([]entry, error) {
	line, ok := c.next()
	if !ok {
		return nil, &core.HeaderParseError{Expected: expected, Reason: "unexpected end of header"}
	}
	column, ok := labelColumn(line, label)
	if !ok {
		return nil, &core.HeaderParseError{Expected: expected, Line: line, Reason: "want '// " + label + " <entries>'"}
	}
	state := listState{column: column}

	var entries []entry
	for {
		items, trailingComma, err := splitEntries(line[state.column:])
		if err != nil {
			return nil, &core.HeaderParseError{Expected: expected, Line: line, Reason: err.Error()}
		}
		for _, item := range items {
			entries = append(entries, entry{text: item, line: line})
		}

		next, hasNext := c.peek()
		aligned := hasNext && state.continues(next)
		switch {
		case trailingComma && !aligned:
			return nil, &core.HeaderParseError{
				Expected: expected,
				Line:     line,
				Reason:   fmt.Sprintf("trailing ',' but the next line does not continue at column %d", state.column),
			}
		case !trailingComma && aligned:
			return nil, &core.HeaderParseError{
				Expected: expected,
				Line:     next,
				Reason:   "continuation line without ',' at the end of the previous line",
			}
		case !trailingComma:
			p.logger.Debug("parsed list", "label", label, "entries", len(entries))
			return entries, nil
		}
		line, _ = c.next()
	}
}

// labelColumn returns the byte offset of the first entry after label, skipping
// blanks on both sides of the label.
func labelColumn(line, label string) (int, bool) {
	if !strings.HasPrefix(line, "//") {
		return 0, false
	}
	i := 2
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if !strings.HasPrefix(line[i:], label) {
		return 0, false
	}
	i += len(label)
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return 0, false
	}
	return i, true
}

// splitEntries splits s on commas that are not inside <...>. A single trailing
// comma is reported rather than producing an empty entry.
func splitEntries(s string) ([]string, bool, error) {
	var (
		items []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				items = append(items, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	last := strings.TrimSpace(s[start:])
	trailingComma := last == "" && len(items) > 0
	if !trailingComma {
		items = append(items, last)
	}
	for _, item := range items {
		if item == "" {
			return nil, false, fmt.Errorf("empty entry")
		}
	}
	return items, trailingComma, nil
}
