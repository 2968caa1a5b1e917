// Package diff renders line diffs of resolved output so two revisions of a
// widget document can be compared class by class.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type line struct {
	op   diffmatchpatch.Operation
	text string
}

// Unified returns a line diff of before and after. Unchanged runs longer
// than 2*context lines are collapsed behind an @@ marker; a negative context
// keeps every line. Returns "" when the inputs are identical. Output beyond
// 10,000 lines is truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string, context int) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var lines []line
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			lines = append(lines, line{op: d.Type, text: text})
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	written := 0
	skipped := false
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual && context >= 0 && !nearChange(lines, i, context) {
			skipped = true
			continue
		}
		if skipped {
			buf.WriteString("@@\n")
			skipped = false
		}
		if written == maxDiffLines {
			buf.WriteString(truncateMessage + "\n")
			break
		}
		buf.WriteString(prefix(l.op))
		buf.WriteString(l.text)
		buf.WriteString("\n")
		written++
	}

	return buf.String()
}

// Changes counts inserted and deleted lines.
func Changes(before, after []byte) (inserted, deleted int) {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(string(before), string(after))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			deleted += len(splitLines(d.Text))
		}
	}
	return inserted, deleted
}

func nearChange(lines []line, i, context int) bool {
	lo, hi := i-context, i+context
	if lo < 0 {
		lo = 0
	}
	if hi >= len(lines) {
		hi = len(lines) - 1
	}
	for j := lo; j <= hi; j++ {
		if lines[j].op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func prefix(op diffmatchpatch.Operation) string {
	switch op {
	case diffmatchpatch.DiffInsert:
		return "+"
	case diffmatchpatch.DiffDelete:
		return "-"
	default:
		return " "
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
