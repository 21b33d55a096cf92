// File: read.go
// Role: plain-text edge-list parser.
//
// Format: one edge per line, "source target [weight]", fields separated by
// whitespace or commas. The weight defaults to 1. Blank lines and lines
// starting with '#' are skipped.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Read parses an edge list from r.
//
// Errors:
//   - ErrSyntax: wrong field count or unparsable number (with line number).
//   - I/O errors from r.
func Read(r io.Reader) ([]Edge, error) {
	var edges []Edge
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool { return c == ',' || unicode.IsSpace(c) })
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("Read: line %d: %d fields: %w", line, len(fields), ErrSyntax)
		}
		src, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: source %q: %w", line, fields[0], ErrSyntax)
		}
		dst, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: target %q: %w", line, fields[1], ErrSyntax)
		}
		w := 1.0
		if len(fields) == 3 {
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("Read: line %d: weight %q: %w", line, fields[2], ErrSyntax)
			}
		}
		edges = append(edges, Edge{Source: src, Target: dst, Weight: w})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return edges, nil
}
