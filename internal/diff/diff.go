// Package diff compares a generated pom.xml with one already on disk.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Result holds the outcome of comparing two pom documents.
type Result struct {
	Unified  string
	Hunks    []string
	Added    int
	Removed  int
	OldLabel string
	NewLabel string
}

// HasDifferences reports whether the documents differ.
func (r *Result) HasDifferences() bool {
	return r.Unified != ""
}

// Options configures a comparison.
type Options struct {
	OldLabel string
	NewLabel string
	Context  int

	// NormalizeLineEndings treats CRLF and LF as equal.
	NormalizeLineEndings bool
}

// DefaultOptions returns the options used by the diff command.
func DefaultOptions() Options {
	return Options{
		OldLabel:             "existing/pom.xml",
		NewLabel:             "generated/pom.xml",
		Context:              3,
		NormalizeLineEndings: true,
	}
}

// Compute returns a unified diff from oldDoc to newDoc.
func Compute(oldDoc, newDoc string, opts Options) (*Result, error) {
	if opts.NormalizeLineEndings {
		oldDoc = strings.ReplaceAll(oldDoc, "\r\n", "\n")
		newDoc = strings.ReplaceAll(newDoc, "\r\n", "\n")
	}

	ud := difflib.UnifiedDiff{
		A:        splitLines(oldDoc),
		B:        splitLines(newDoc),
		FromFile: opts.OldLabel,
		ToFile:   opts.NewLabel,
		Context:  opts.Context,
	}

	unified, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	result := &Result{
		Unified:  unified,
		OldLabel: opts.OldLabel,
		NewLabel: opts.NewLabel,
	}

	if unified != "" {
		result.Hunks = extractHunks(unified)
		result.Added, result.Removed = countChanges(unified)
	}

	return result, nil
}

// extractHunks splits unified diff output into hunks. The file header
// belongs to the first hunk.
func extractHunks(unified string) []string {
	var (
		hunks   []string
		current strings.Builder
	)

	for _, line := range strings.SplitAfter(unified, "\n") {
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "@@") && current.Len() > 0 && !onlyHeader(current.String()) {
			hunks = append(hunks, current.String())
			current.Reset()
		}

		current.WriteString(line)
	}

	if current.Len() > 0 {
		hunks = append(hunks, current.String())
	}

	return hunks
}

func onlyHeader(s string) bool {
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if !strings.HasPrefix(line, "---") && !strings.HasPrefix(line, "+++") {
			return false
		}
	}

	return true
}

func countChanges(unified string) (added, removed int) {
	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}

	return added, removed
}

var (
	headerColor  = color.New(color.Bold)
	hunkColor    = color.New(color.FgCyan)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// Write prints result to w. When colored is false no escape sequences are
// written, regardless of whether w is a terminal.
func Write(w io.Writer, result *Result, colored bool) {
	if !result.HasDifferences() {
		_, _ = fmt.Fprintln(w, "No differences found.")
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(result.Unified, "\n"), "\n") {
		c := lineColor(line)
		if c == nil || !colored {
			_, _ = fmt.Fprintln(w, line)
			continue
		}

		_, _ = fmt.Fprintln(w, sprint(c, line))
	}

	_, _ = fmt.Fprintf(w, "%d line(s) added, %d line(s) removed\n", result.Added, result.Removed)
}

// sprint colors s even when the process has no terminal attached. The
// caller already decided that color is wanted.
func sprint(c *color.Color, s string) string {
	cc := *c
	cc.EnableColor()

	return cc.Sprint(s)
}

func lineColor(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return headerColor
	case strings.HasPrefix(line, "@@"):
		return hunkColor
	case strings.HasPrefix(line, "-"):
		return removedColor
	case strings.HasPrefix(line, "+"):
		return addedColor
	default:
		return nil
	}
}

// splitLines splits s into lines that keep their trailing newline, the form
// difflib expects.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}

	return strings.SplitAfter(s, "\n")
}
