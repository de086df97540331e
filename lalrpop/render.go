// Package lalrpop renders an abnf rule model as a LALRPOP grammar. Every
// alternative gets the unit action `=> ()`.
package lalrpop

import (
	"io"
	"strings"

	"github.com/arr-ai/abnf2lalrpop/abnf"
)

const header = "grammar;\n"

// Render returns the complete grammar document for rules.
func Render(rules []abnf.Rule) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_, _ = Write(&sb, rules)
	return sb.String()
}

// Write writes the grammar document for rules to w: the grammar header, then
// each rule prefixed with "pub " on its own lines.
func Write(w io.Writer, rules []abnf.Rule) (n int, err error) {
	if err = write(w, header, &n); err != nil {
		return
	}
	for _, rule := range rules {
		if err = write(w, "pub "+Rule(rule)+"\n", &n); err != nil {
			return
		}
	}
	return
}

func write(w io.Writer, s string, N *int) error {
	n, err := io.WriteString(w, s)
	*N += n
	return err
}

// Rule renders one rule block, without a trailing newline.
func Rule(r abnf.Rule) string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString(": () = {\n")
	for _, alt := range r.Body {
		sb.WriteString("    ")
		writePats(&sb, alt)
		sb.WriteString(" => (),\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Pat renders a single pattern. Lists are always parenthesized; a Repeat is
// parenthesized unless it wraps exactly one pattern.
func Pat(p abnf.Pat) string {
	var sb strings.Builder
	writePat(&sb, p)
	return sb.String()
}

func writePat(sb *strings.Builder, p abnf.Pat) {
	switch p := p.(type) {
	case abnf.Atom:
		sb.WriteString(string(p))
	case abnf.List:
		sb.WriteString("(")
		writePats(sb, p)
		sb.WriteString(")")
	case abnf.Repeat:
		group := len(p.Pats) != 1
		if group {
			sb.WriteString("(")
		}
		writePats(sb, p.Pats)
		if group {
			sb.WriteString(")")
		}
		sb.WriteString(p.Kind.String())
	}
}

func writePats(sb *strings.Builder, pats abnf.List) {
	for i, p := range pats {
		if i > 0 {
			sb.WriteString(" ")
		}
		writePat(sb, p)
	}
}
