package abnf

import (
	"fmt"
	"strings"
)

// Kind is the postfix operator of a Repeat.
type Kind rune

const (
	Star     = Kind('*')
	Plus     = Kind('+')
	Optional = Kind('?')
)

func (k Kind) String() string {
	return string(k)
}

// Pat is one node of a rule body. It is one of Atom, List or Repeat.
type Pat interface {
	fmt.Stringer
	isPat()
}

func (Atom) isPat()   {}
func (List) isPat()   {}
func (Repeat) isPat() {}

// Atom is a terminal: a normalized identifier reference or a string literal
// exactly as it appeared in the source, quotes and raw prefix included.
type Atom string

// List is a sequence of patterns matched in order.
type List []Pat

// Repeat applies Kind to Pats. More than one pattern forms an implicit group.
type Repeat struct {
	Pats List
	Kind Kind
}

// Rule is a named production. Body holds the alternatives in source order and
// is never empty.
type Rule struct {
	Name string
	Body []List
}

// Ident normalizes an identifier by replacing every '-' with '_'.
func Ident(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// The String methods produce a compact debugging form. See package lalrpop for
// the rendered output grammar.

func (a Atom) String() string {
	return string(a)
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range l {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (r Repeat) String() string {
	return r.Pats.String() + r.Kind.String()
}

func (r Rule) String() string {
	alts := make([]string, 0, len(r.Body))
	for _, alt := range r.Body {
		alts = append(alts, alt.String())
	}
	return r.Name + " = " + strings.Join(alts, " / ")
}
