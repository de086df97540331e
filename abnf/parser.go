package abnf

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arr-ai/frozen"
)

const (
	expectIdent  = "ident"
	expectString = "string"
	expectEOF    = "EOF"
)

// Parse recognizes src as a sequence of rule definitions:
//
//	rule  = ident "=" alt ("/" alt)* ";"?
//	alt   = pat+
//	pat   = atom | "*" pat | "+" pat | "(" pat* ")" | "[" pat+ "]"
//	atom  = string | ident (not followed by "=")
//
// Alternatives are tried in order and the first match wins. On failure the
// returned error is a SyntaxError.
func Parse(src string) ([]Rule, error) {
	return ParseWithFilename(src, "")
}

// ParseWithFilename is Parse with a filename recorded in any SyntaxError.
func ParseWithFilename(src, filename string) ([]Rule, error) {
	p := parser{src: src, expected: frozen.NewSet[string]()}
	rules, pos := p.defs(0)
	if pos != len(src) {
		p.fail(pos, expectEOF)
		return nil, newSyntaxError(src, filename, p.furthest, p.expected)
	}
	return rules, nil
}

// MustParse is Parse that panics on error.
func MustParse(src string) []Rule {
	rules, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return rules
}

// parser holds the source text and the furthest failure seen so far. Each rule
// method takes a byte offset and returns the offset after its match; a failed
// match leaves nothing to undo.
type parser struct {
	src      string
	furthest int
	expected frozen.Set[string]
}

func (p *parser) fail(pos int, what string) {
	switch {
	case pos > p.furthest:
		p.furthest = pos
		p.expected = frozen.NewSet(what)
	case pos == p.furthest:
		p.expected = p.expected.With(what)
	}
}

func (p *parser) literal(pos int, lit string) (int, bool) {
	if strings.HasPrefix(p.src[pos:], lit) {
		return pos + len(lit), true
	}
	p.fail(pos, strconv.Quote(lit))
	return pos, false
}

func (p *parser) ws(pos int) int {
	for pos < len(p.src) {
		switch p.src[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isIdentRune(r rune) bool {
	switch {
	case r >= utf8.RuneSelf:
		return true
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	}
	return r == '-' || r == '_'
}

func (p *parser) ident(pos int) (string, int, bool) {
	rest := p.src[pos:]
	if strings.HasPrefix(rest, `r#`) || strings.HasPrefix(rest, `r"`) {
		p.fail(pos, expectIdent)
		return "", pos, false
	}
	end := pos
	for end < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[end:])
		if !isIdentRune(r) {
			break
		}
		end += size
	}
	if end == pos {
		p.fail(pos, expectIdent)
		return "", pos, false
	}
	return Ident(p.src[pos:end]), end, true
}

// str matches r?#{d}"...."#{d}. The body runs up to the first quote followed by
// d hashes.
func (p *parser) str(pos int) (int, bool) {
	i := pos
	if strings.HasPrefix(p.src[i:], "r") {
		i++
	}
	hashes := i
	for i < len(p.src) && p.src[i] == '#' {
		i++
	}
	closing := `"` + p.src[hashes:i]
	if !strings.HasPrefix(p.src[i:], `"`) {
		p.fail(pos, expectString)
		return pos, false
	}
	for i++; i < len(p.src); {
		if strings.HasPrefix(p.src[i:], closing) {
			return i + len(closing), true
		}
		_, size := utf8.DecodeRuneInString(p.src[i:])
		i += size
	}
	p.fail(pos, expectString)
	return pos, false
}

func (p *parser) atom(pos int) (Atom, int, bool) {
	if end, ok := p.str(pos); ok {
		return Atom(p.src[pos:end]), end, true
	}
	name, end, ok := p.ident(pos)
	if !ok {
		return "", pos, false
	}
	// An identifier followed by "=" starts the next definition.
	if strings.HasPrefix(p.src[p.ws(end):], "=") {
		return "", pos, false
	}
	return Atom(name), end, true
}

func (p *parser) pat(pos int) (out Pat, end int, ok bool) {
	defer enterf("pat@%d", pos).exitf("ok=%v end=%v %v", &ok, &end, &out)

	if a, end, ok := p.atom(pos); ok {
		return a, end, true
	}
	for _, kind := range []Kind{Star, Plus} {
		if next, ok := p.literal(pos, kind.String()); ok {
			if sub, end, ok := p.pat(p.ws(next)); ok {
				return Repeat{Pats: List{sub}, Kind: kind}, end, true
			}
		}
	}
	if next, ok := p.literal(pos, "("); ok {
		list, next := p.pats(p.ws(next))
		if end, ok := p.literal(p.ws(next), ")"); ok {
			if list == nil {
				list = List{}
			}
			return list, end, true
		}
	}
	if next, ok := p.literal(pos, "["); ok {
		if list, next := p.pats(p.ws(next)); len(list) > 0 {
			if end, ok := p.literal(p.ws(next), "]"); ok {
				return Repeat{Pats: list, Kind: Optional}, end, true
			}
		}
	}
	return nil, pos, false
}

// pats matches zero or more whitespace-separated patterns. Whitespace after the
// last pattern is not consumed.
func (p *parser) pats(pos int) (List, int) {
	var list List
	for {
		start := pos
		if len(list) > 0 {
			start = p.ws(pos)
		}
		pat, end, ok := p.pat(start)
		if !ok {
			return list, pos
		}
		list = append(list, pat)
		pos = end
	}
}

func (p *parser) def(pos int) (rule Rule, end int, ok bool) {
	defer enterf("def@%d", pos).exitf("ok=%v end=%v", &ok, &end)

	name, next, ok := p.ident(pos)
	if !ok {
		return Rule{}, pos, false
	}
	if next, ok = p.literal(p.ws(next), "="); !ok {
		return Rule{}, pos, false
	}
	next = p.ws(next)

	var body []List
	for {
		start := next
		if len(body) > 0 {
			slash, ok := p.literal(p.ws(next), "/")
			if !ok {
				break
			}
			start = p.ws(slash)
		}
		alt, end := p.pats(start)
		if len(alt) == 0 {
			break
		}
		body = append(body, alt)
		next = end
	}
	if len(body) == 0 {
		return Rule{}, pos, false
	}
	if semi, ok := p.literal(p.ws(next), ";"); ok {
		next = semi
	}
	return Rule{Name: name, Body: body}, next, true
}

func (p *parser) defs(pos int) ([]Rule, int) {
	rules := []Rule{}
	pos = p.ws(pos)
	for {
		rule, end, ok := p.def(pos)
		if !ok {
			return rules, pos
		}
		rules = append(rules, rule)
		pos = p.ws(end)
	}
}
