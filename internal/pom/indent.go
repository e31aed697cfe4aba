package pom

import (
	"bufio"
	"io"
	"strings"
)

// indentWriter writes lines prefixed by the current indentation. The first
// write error is kept and every later call becomes a no-op, so callers check
// the error once at the end.
type indentWriter struct {
	w      *bufio.Writer
	indent string
	level  int
	bol    bool
	err    error
}

func newIndentWriter(w io.Writer, indent string) *indentWriter {
	return &indentWriter{w: bufio.NewWriter(w), indent: indent, bol: true}
}

// print writes s, indenting it if it starts a new line.
func (iw *indentWriter) print(s string) {
	if iw.err != nil || s == "" {
		return
	}

	if iw.bol {
		iw.write(strings.Repeat(iw.indent, iw.level))
		iw.bol = false
	}

	iw.write(s)
}

// println writes s followed by a newline. An empty s produces a bare newline
// without trailing indentation.
func (iw *indentWriter) println(s string) {
	iw.print(s)
	iw.write("\n")
	iw.bol = true
}

// indented runs fn one level deeper.
func (iw *indentWriter) indented(fn func()) {
	iw.level++
	fn()
	iw.level--
}

func (iw *indentWriter) write(s string) {
	if iw.err != nil {
		return
	}

	_, iw.err = iw.w.WriteString(s)
}

// fail records err unless an earlier error is already set.
func (iw *indentWriter) fail(err error) {
	if iw.err == nil {
		iw.err = err
	}
}

// flush flushes buffered output and returns the first error seen.
func (iw *indentWriter) flush() error {
	if iw.err != nil {
		return iw.err
	}

	return iw.w.Flush()
}
