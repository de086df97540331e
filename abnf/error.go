package abnf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arr-ai/frozen"
	"github.com/fatih/color"
)

var caretColor = color.New(color.FgRed, color.Bold)

// SyntaxError reports the furthest position the recognizer reached and what
// it expected there.
type SyntaxError struct {
	Filename string
	Source   string
	Offset   int
	Line     int // 1-based
	Column   int // 1-based, in characters
	Expected []string
}

func newSyntaxError(src, filename string, offset int, expected frozen.Set[string]) SyntaxError {
	names := make([]string, 0, expected.Count())
	for _, e := range expected.OrderedElements(func(a, b string) bool { return a < b }) {
		names = append(names, e)
	}
	line, col := lineColumn(src, offset)
	return SyntaxError{
		Filename: filename,
		Source:   src,
		Offset:   offset,
		Line:     line,
		Column:   col,
		Expected: names,
	}
}

func (e SyntaxError) Error() string {
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("error at %d:%d", e.Line, e.Column)
	case 1:
		return fmt.Sprintf("error at %d:%d: expected %s", e.Line, e.Column, e.Expected[0])
	}
	return fmt.Sprintf("error at %d:%d: expected one of %s",
		e.Line, e.Column, strings.Join(e.Expected, ", "))
}

// Context renders the offending source line with a caret under the failing
// column, followed by the message.
func (e SyntaxError) Context() string {
	var sb strings.Builder
	if e.Filename != "" {
		fmt.Fprintf(&sb, "%s:%d:%d:\n", e.Filename, e.Line, e.Column)
	}
	start := strings.LastIndex(e.Source[:e.Offset], "\n") + 1
	end := len(e.Source)
	if i := strings.IndexByte(e.Source[e.Offset:], '\n'); i >= 0 {
		end = e.Offset + i
	}
	sb.WriteString(strings.TrimSuffix(e.Source[start:end], "\r"))
	sb.WriteString("\n")
	// Tabs are echoed so the caret lines up however the terminal expands them.
	for _, r := range e.Source[start:e.Offset] {
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	sb.WriteString(caretColor.Sprint("^"))
	sb.WriteString(" ")
	sb.WriteString(e.Error())
	return sb.String()
}

// The 1-indexed line and column number of the given byte offset within str.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = utf8.RuneCountInString(prefix[strings.LastIndex(prefix, "\n")+1:]) + 1
	return
}
